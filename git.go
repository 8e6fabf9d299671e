package tabreap

import (
	"os/exec"
	"path/filepath"
	"strings"
)

// Repository is the version-control collaborator. All methods are
// best-effort queries; callers treat any error as "nothing to reconcile".
type Repository interface {
	Root(dir string) (string, error)
	Tracked(root string) ([]string, error)
	Changes(root string) ([]Change, error)
}

// GitRepo queries a working tree through the git command line.
type GitRepo struct{}

func NewGitRepo() GitRepo {
	return GitRepo{}
}

func (GitRepo) Root(dir string) (string, error) {
	cmd := exec.Command("git", "-C", dir, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// Tracked returns the absolute paths of all files git currently knows
// about under root (committed or staged).
func (GitRepo) Tracked(root string) ([]string, error) {
	cmd := exec.Command("git", "-C", root, "ls-files", "-z")
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, p := range strings.Split(string(out), "\x00") {
		if p == "" {
			continue
		}
		paths = append(paths, filepath.Join(root, p))
	}
	return paths, nil
}

// Changes lists the files deleted or renamed by the last ref move
// (HEAD@{1} -> HEAD). It exists only to annotate summaries; reconcile
// truth is the tracked set.
func (GitRepo) Changes(root string) ([]Change, error) {
	cmd := exec.Command("git", "-C", root, "diff", "--name-status", "--diff-filter=DR", "HEAD@{1}", "HEAD")
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}
	return parseNameStatus(string(out)), nil
}

func parseNameStatus(out string) []Change {
	var changes []Change
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Split(strings.TrimRight(line, "\r"), "\t")
		if len(fields) < 2 || fields[0] == "" {
			continue
		}

		switch fields[0][0] {
		case 'D':
			changes = append(changes, Change{Action: "D", Path: fields[1]})
		case 'R':
			if len(fields) < 3 {
				continue
			}
			changes = append(changes, Change{Action: "R", Path: fields[1], NewPath: fields[2]})
		}
	}
	return changes
}
