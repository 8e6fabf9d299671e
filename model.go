package tabreap

import "github.com/neovim/go-client/nvim"

type Tab struct {
	Buffer   nvim.Buffer
	Path     string
	Modified bool
}

type Change struct {
	Action  string // "D" or "R"
	Path    string
	NewPath string
}

type Summary struct {
	Closed  []string
	Skipped []string
	Message string
}

func (s Summary) Empty() bool {
	return len(s.Closed) == 0 && len(s.Skipped) == 0
}
