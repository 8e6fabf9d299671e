package tabreap

import (
	"testing"

	"github.com/neovim/go-client/nvim"
	"github.com/stretchr/testify/assert"
)

func tabsFor(paths ...string) []Tab {
	tabs := make([]Tab, len(paths))
	for i, p := range paths {
		tabs[i] = Tab{Buffer: nvim.Buffer(i + 1), Path: p}
	}
	return tabs
}

func stalePaths(stale []Tab) []string {
	var paths []string
	for _, t := range stale {
		paths = append(paths, t.Path)
	}
	return paths
}

func TestReconcileClosesDeletedFile(t *testing.T) {
	tracked := []string{"/repo/a.py", "/repo/b.py"}
	tabs := tabsFor("/repo/a.py", "/repo/b.py", "/repo/c.py")

	stale := Reconcile("/repo", tracked, tabs)

	assert.Equal(t, []string{"/repo/c.py"}, stalePaths(stale))
}

func TestReconcileClosesRenamedOldPath(t *testing.T) {
	tracked := []string{"/repo/new.py"}
	tabs := tabsFor("/repo/old.py")

	stale := Reconcile("/repo", tracked, tabs)

	assert.Equal(t, []string{"/repo/old.py"}, stalePaths(stale))
}

func TestReconcileNeverSelectsTrackedTabs(t *testing.T) {
	tracked := []string{"/repo/a.py", "/repo/sub/b.py"}
	tabs := tabsFor("/repo/a.py", "/repo/sub/b.py")

	assert.Empty(t, Reconcile("/repo", tracked, tabs))
}

func TestReconcileIgnoresTabsOutsideRoot(t *testing.T) {
	tracked := []string{"/repo/a.py"}
	tabs := tabsFor("/elsewhere/c.py", "/repository/d.py")

	assert.Empty(t, Reconcile("/repo", tracked, tabs))
}

func TestReconcileIsIdempotent(t *testing.T) {
	tracked := []string{"/repo/a.py"}
	tabs := tabsFor("/repo/a.py", "/repo/gone.py")

	first := Reconcile("/repo", tracked, tabs)
	assert.Len(t, first, 1)

	// After the host closed the stale tab, a second pass finds nothing.
	remaining := tabsFor("/repo/a.py")
	assert.Empty(t, Reconcile("/repo", tracked, remaining))
}

func TestReconcileNormalizesPaths(t *testing.T) {
	tracked := []string{"/repo/./a.py"}
	tabs := tabsFor("/repo/sub/../a.py")

	assert.Empty(t, Reconcile("/repo/", tracked, tabs))
}

func TestReconcileEmptyTrackedSelectsEverythingUnderRoot(t *testing.T) {
	tabs := tabsFor("/repo/a.py", "/other/b.py")

	stale := Reconcile("/repo", nil, tabs)

	assert.Equal(t, []string{"/repo/a.py"}, stalePaths(stale))
}
