package symptom

import "strings"

// ParseCustom splits free-text input on commas into trimmed, lower-cased
// tokens. Empty tokens are dropped.
func ParseCustom(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		out = append(out, token)
	}
	return out
}

// Combine returns the union of selected and custom without duplicates.
// Selected symptoms come first; the first occurrence of a symptom wins.
func Combine(selected, custom []string) []string {
	seen := make(map[string]struct{}, len(selected)+len(custom))
	out := make([]string, 0, len(selected)+len(custom))
	for _, list := range [][]string{selected, custom} {
		for _, s := range list {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
