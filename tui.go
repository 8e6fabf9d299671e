package tabreap

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	closedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	quietStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Closed:", closedStyle, s.Closed)
	renderList("Skipped:", skippedStyle, s.Skipped)

	return b.String()
}

type WatchUI struct {
	app    *App
	events <-chan string
}

func NewWatchUI(app *App, events <-chan string) *WatchUI {
	return &WatchUI{app: app, events: events}
}

func (u *WatchUI) Run() error {
	p := tea.NewProgram(watchModel{app: u.app, events: u.events})
	_, err := p.Run()
	return err
}

type hostEventMsg string

type watchModel struct {
	app       *App
	events    <-chan string
	handled   int
	lastEvent string
	last      Summary
}

func (m watchModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return hostEventMsg(eventQuit)
		}
		return hostEventMsg(ev)
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case hostEventMsg:
		if string(msg) == eventQuit {
			return m, tea.Quit
		}
		m.lastEvent = string(msg)
		m.last = m.app.ReconcileActive()
		m.handled++
		return m, waitForEvent(m.events)
	}
	return m, nil
}

func (m watchModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("tabreap") + " watching for checkouts (q to quit)\n\n")

	if m.handled == 0 {
		b.WriteString(quietStyle.Render("waiting for editor events...") + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("events handled: %d  last: %s\n", m.handled, m.lastEvent))
	if m.last.Empty() {
		b.WriteString(quietStyle.Render("nothing to close") + "\n")
		return b.String()
	}
	b.WriteString(FormatSummary(m.last))
	return b.String()
}
