package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)
)

// Messages exchanged between the bridge and the model
type (
	lineMsg   string
	clearMsg  struct{}
	statusMsg string
	promptMsg struct {
		label string
		reply chan string
	}
)

// Model is the bubbletea model for the game screen: a status bar, a
// scrolling game log and a single input line that activates whenever the
// driver is waiting for the player.
type Model struct {
	viewport viewport.Model
	input    textinput.Model

	lines  []string
	status string

	promptLabel string
	reply       chan string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// NewModel creates the game screen model
func NewModel() *Model {
	vp := viewport.New(10, 5)

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 40
	ti.Focus()

	return &Model{
		viewport: vp,
		input:    ti,
		status:   "Очко",
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 3
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		m.initialized = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.closePendingPrompt()
			return m, tea.Quit
		case tea.KeyEnter:
			if m.reply != nil {
				value := strings.TrimSpace(m.input.Value())
				m.input.Reset()
				m.appendLine(promptStyle.Render(m.promptLabel) + " " + value)
				m.reply <- value
				m.reply = nil
				m.promptLabel = ""
			}
			return m, nil
		}

	case lineMsg:
		m.appendLine(string(msg))
		return m, nil

	case clearMsg:
		m.lines = nil
		m.refreshViewport()
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case promptMsg:
		m.promptLabel = msg.label
		m.reply = msg.reply
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "loading..."
	}

	var prompt string
	if m.promptLabel != "" {
		prompt = promptStyle.Render(m.promptLabel) + " " + m.input.View()
	} else {
		prompt = m.input.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusStyle.Width(m.width).Render(m.status),
		m.viewport.View(),
		prompt,
	)
}

func (m *Model) appendLine(s string) {
	m.lines = append(m.lines, s)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

// closePendingPrompt unblocks a driver waiting on a prompt when the player
// quits mid-question.
func (m *Model) closePendingPrompt() {
	if m.reply != nil {
		close(m.reply)
		m.reply = nil
		m.promptLabel = ""
	}
}
