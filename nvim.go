package tabreap

import (
	"fmt"
	"os"

	"github.com/neovim/go-client/nvim"
)

const (
	notifyMethod = "tabreap"
	eventQuit    = "VimLeavePre"
)

// triggerEvents are the autocmds after which a checkout may plausibly
// have happened since the last look.
var triggerEvents = []string{"FocusGained", "BufWritePost"}

type NvimManager struct {
	v *nvim.Nvim
}

// NewNvimManager attaches to a running instance. It never starts one:
// closing tabs only makes sense in the editor the user is looking at.
func NewNvimManager(socket string) (*NvimManager, error) {
	addr := socket
	if addr == "" {
		addr = os.Getenv("NVIM_LISTEN_ADDRESS")
	}
	if addr == "" {
		return nil, fmt.Errorf("no nvim address: pass --socket or set NVIM_LISTEN_ADDRESS")
	}

	v, err := nvim.Dial(addr)
	if err != nil {
		return nil, err
	}
	return &NvimManager{v: v}, nil
}

func (m *NvimManager) Close() {
	if m.v != nil {
		m.v.Close()
	}
}

func (m *NvimManager) ActivePath() (string, error) {
	return m.v.BufferName(0)
}

func (m *NvimManager) ListTabs() ([]Tab, error) {
	bufs, err := m.v.Buffers()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(bufs))
	listed := make([]bool, len(bufs))
	modified := make([]bool, len(bufs))

	b := m.v.NewBatch()
	for i, buf := range bufs {
		b.BufferName(buf, &names[i])
		b.BufferOption(buf, "buflisted", &listed[i])
		b.BufferOption(buf, "modified", &modified[i])
	}
	if err := b.Execute(); err != nil {
		return nil, err
	}

	var tabs []Tab
	for i, buf := range bufs {
		if !listed[i] || names[i] == "" {
			continue
		}
		tabs = append(tabs, Tab{Buffer: buf, Path: names[i], Modified: modified[i]})
	}
	return tabs, nil
}

// CloseTab deletes the buffer without a bang, so nvim keeps its own
// refuse-on-unsaved-changes policy.
func (m *NvimManager) CloseTab(t Tab) error {
	return m.v.Command(fmt.Sprintf("bdelete %d", t.Buffer))
}

// Subscribe wires the trigger autocmds to rpcnotify calls back over this
// channel and returns the resulting event stream. The stream ends with
// eventQuit when the editor shuts down.
func (m *NvimManager) Subscribe() (<-chan string, error) {
	events := make(chan string, 16)
	err := m.v.RegisterHandler(notifyMethod, func(event string) {
		select {
		case events <- event:
		default: // bursts coalesce; reconcile is idempotent
		}
	})
	if err != nil {
		return nil, err
	}

	chanID := m.v.ChannelID()
	b := m.v.NewBatch()
	b.Command("augroup tabreap")
	b.Command("autocmd!")
	for _, ev := range append(triggerEvents, eventQuit) {
		b.Command(fmt.Sprintf("autocmd %s * call rpcnotify(%d, '%s', '%s')", ev, chanID, notifyMethod, ev))
	}
	b.Command("augroup END")
	if err := b.Execute(); err != nil {
		return nil, err
	}
	return events, nil
}
