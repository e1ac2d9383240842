package symptom

import (
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Symptoms []string `yaml:"symptoms"`
}

var catalog = mustLoadCatalog(catalogYAML)

func mustLoadCatalog(data []byte) []string {
	list, err := loadCatalog(data)
	if err != nil {
		panic(err)
	}
	return list
}

func loadCatalog(data []byte) ([]string, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("symptom catalog: %w", err)
	}
	if len(f.Symptoms) == 0 {
		return nil, fmt.Errorf("symptom catalog: no symptoms listed")
	}
	seen := make(map[string]struct{}, len(f.Symptoms))
	for _, s := range f.Symptoms {
		if strings.TrimSpace(s) == "" {
			return nil, fmt.Errorf("symptom catalog: blank entry")
		}
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("symptom catalog: duplicate entry %q", s)
		}
		seen[s] = struct{}{}
	}
	return f.Symptoms, nil
}

// Catalog returns the known symptoms in display order. The slice is a copy.
func Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// Known reports whether s is in the catalog.
func Known(s string) bool {
	for _, c := range catalog {
		if c == s {
			return true
		}
	}
	return false
}

// Label turns an identifier like "skin_rash" into "Skin Rash".
func Label(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
