package tabreap

// Host is the editor side of the reconcile loop: where the user is,
// what is open, and a way to ask for a close. The host keeps tab
// lifecycle ownership; CloseTab is a request it may refuse.
type Host interface {
	ActivePath() (string, error)
	ListTabs() ([]Tab, error)
	CloseTab(Tab) error
}
