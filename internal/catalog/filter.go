package catalog

import "strings"

// Filter narrows items to those in category whose name or description contains
// search, ignoring case. Input order is preserved and the input is not modified.
// The result is never nil, so an empty match encodes as an empty list.
func Filter(items []Item, category Category, search string) []Item {
	needle := strings.ToLower(search)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if category != CategoryAll && it.Category != category {
			continue
		}
		if !strings.Contains(strings.ToLower(it.Name), needle) &&
			!strings.Contains(strings.ToLower(it.Description), needle) {
			continue
		}
		out = append(out, it)
	}
	return out
}
