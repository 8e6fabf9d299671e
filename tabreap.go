package tabreap

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	Socket    string
	Once      bool
	NoWatchUI bool
}

type App struct {
	cfg  *Config
	host Host
	repo Repository
}

func NewApp(cfg *Config, host Host) *App {
	return &App{cfg: cfg, host: host, repo: NewGitRepo()}
}

// ReconcileActive closes the tabs of the active buffer's repository whose
// files git no longer tracks. Everything is recomputed per call; a failed
// query means zero closes, never an interrupted session.
func (a *App) ReconcileActive() Summary {
	path, err := a.host.ActivePath()
	if err != nil || path == "" {
		return Summary{}
	}

	root, err := a.repo.Root(filepath.Dir(path))
	if err != nil || root == "" {
		// Not a version-controlled file. Nothing to do.
		return Summary{}
	}

	tracked, err := a.repo.Tracked(root)
	if err != nil {
		return Summary{}
	}

	tabs, err := a.host.ListTabs()
	if err != nil {
		return Summary{}
	}

	s := a.closeTabs(Reconcile(root, tracked, tabs))
	a.annotate(&s, root)
	relativizeSummaryPaths(&s, root)
	return s
}

func (a *App) closeTabs(stale []Tab) Summary {
	var s Summary
	for _, t := range stale {
		if err := a.host.CloseTab(t); err != nil {
			// The host refused, e.g. unsaved changes. Accepted, not retried.
			s.Skipped = append(s.Skipped, t.Path)
			continue
		}
		s.Closed = append(s.Closed, t.Path)
	}
	return s
}

func (a *App) annotate(s *Summary, root string) {
	if len(s.Closed) == 0 && len(s.Skipped) == 0 {
		return
	}
	changes, err := a.repo.Changes(root)
	if err != nil || len(changes) == 0 {
		return
	}

	deleted, renamed := 0, 0
	for _, c := range changes {
		if c.Action == "R" {
			renamed++
		} else {
			deleted++
		}
	}
	s.Message = fmt.Sprintf("last checkout deleted %d and renamed %d file(s)", deleted, renamed)
}

func relativizeSummaryPaths(s *Summary, root string) {
	relList := func(paths []string) []string {
		var res []string
		for _, p := range paths {
			if r, err := filepath.Rel(root, p); err == nil {
				res = append(res, r)
			} else {
				res = append(res, p)
			}
		}
		return res
	}
	s.Closed = relList(s.Closed)
	s.Skipped = relList(s.Skipped)
}
