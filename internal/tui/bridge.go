package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/ochko/internal/cli"
	"github.com/lox/ochko/internal/game"
)

// ErrClosed is returned from Prompt when the UI has shut down
var ErrClosed = errors.New("ui closed")

// sender is the part of *tea.Program the bridge needs; narrowed for tests
type sender interface {
	Send(tea.Msg)
}

// Bridge implements cli.UI on top of the bubbletea program. The driver runs
// in its own goroutine and blocks inside Prompt; the model answers over the
// per-prompt reply channel.
type Bridge struct {
	p    sender
	done chan struct{}
}

// NewBridge creates a bridge around a running program
func NewBridge(p sender) *Bridge {
	return &Bridge{
		p:    p,
		done: make(chan struct{}),
	}
}

// Println implements cli.UI
func (b *Bridge) Println(s string) {
	b.p.Send(lineMsg(s))
}

// Prompt implements cli.UI. It blocks until the player answers or the UI
// shuts down.
func (b *Bridge) Prompt(label string) (string, error) {
	reply := make(chan string, 1)
	b.p.Send(promptMsg{label: label, reply: reply})

	select {
	case value, ok := <-reply:
		if !ok {
			return "", ErrClosed
		}
		return value, nil
	case <-b.done:
		return "", ErrClosed
	}
}

// Clear implements cli.UI
func (b *Bridge) Clear() {
	b.p.Send(clearMsg{})
}

// SetStatus implements cli.StatusSetter
func (b *Bridge) SetStatus(status string) {
	b.p.Send(statusMsg(status))
}

// Close unblocks any pending Prompt
func (b *Bridge) Close() {
	select {
	case <-b.done:
	default:
		close(b.done)
	}
}

// Run starts the full-screen UI and drives the game loop until the player
// quits either through the menu or the UI itself.
func Run(session *game.Session, logger *log.Logger) error {
	model := NewModel()
	program := tea.NewProgram(model, tea.WithAltScreen())
	bridge := NewBridge(program)
	driver := cli.NewDriver(session, bridge, logger)

	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := program.Run()
		bridge.Close()
		return err
	})
	g.Go(func() error {
		defer program.Quit()
		return driver.Run()
	})
	return g.Wait()
}
