package tabreap

import (
	"path/filepath"
	"strings"
)

// Reconcile returns the tabs under root whose path is not in tracked.
// Tabs outside root are never selected. The comparison is a plain set
// difference over cleaned absolute paths; closing is order-independent.
func Reconcile(root string, tracked []string, tabs []Tab) []Tab {
	root = filepath.Clean(root)

	set := make(map[string]struct{}, len(tracked))
	for _, p := range tracked {
		set[filepath.Clean(p)] = struct{}{}
	}

	var stale []Tab
	for _, t := range tabs {
		p := filepath.Clean(t.Path)
		if !underRoot(root, p) {
			continue
		}
		if _, ok := set[p]; !ok {
			stale = append(stale, t)
		}
	}
	return stale
}

func underRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
