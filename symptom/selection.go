package symptom

// Selection is the set of symptoms picked in the selector. Items keeps the
// order in which symptoms were added.
type Selection struct {
	items []string
}

// Toggle adds s when absent and removes it when present.
func (sel *Selection) Toggle(s string) {
	for i, item := range sel.items {
		if item == s {
			sel.items = append(sel.items[:i:i], sel.items[i+1:]...)
			return
		}
	}
	sel.items = append(sel.items, s)
}

func (sel *Selection) Has(s string) bool {
	for _, item := range sel.items {
		if item == s {
			return true
		}
	}
	return false
}

func (sel *Selection) Len() int {
	return len(sel.items)
}

// Items returns a copy of the selected symptoms.
func (sel *Selection) Items() []string {
	out := make([]string, len(sel.items))
	copy(out, sel.items)
	return out
}

func (sel *Selection) Clear() {
	sel.items = nil
}
