// This file implements the interactive chat interface using bubbletea.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/johndoe6345789/WordNet/internal/logging"
)

// chatModel is the main model for the interactive chat interface.
type chatModel struct {
	// UI components
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	renderer  *glamour.TermRenderer

	// State
	history   []chatMessage
	isLoading bool
	err       error
	width     int
	height    int
	ready     bool

	// Backend
	engine *engine
}

type chatMessage struct {
	role    string // "user" or "assistant"
	content string
	time    time.Time
}

// Messages for tea updates
type (
	responseMsg string
	errorMsg    error
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	userNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).MarginTop(1)
	aiNameStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).MarginTop(1)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")).Padding(0, 1)
	statusOKStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusBusy    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	spinnerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("13")).Padding(0, 1)
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// initChat initializes the interactive chat model.
func initChat(e *engine) chatModel {
	ti := textinput.New()
	ti.Placeholder = "Describe what you want to build... (Enter to send, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 2048
	ti.Width = 80
	ti.PromptStyle = promptStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	vp := viewport.New(80, 20)
	vp.SetContent("")

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return chatModel{
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		renderer:  renderer,
		engine:    e,
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			if !m.isLoading {
				return m.handleSubmit()
			}
		}

		if !m.isLoading {
			m.textinput, tiCmd = m.textinput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		inputHeight := 3

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight - inputHeight
		}

		m.textinput.Width = msg.Width - 4

		if m.renderer != nil {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(msg.Width-8),
			)
		}

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case responseMsg:
		m.isLoading = false
		m.history = append(m.history, chatMessage{
			role:    "assistant",
			content: string(msg),
			time:    time.Now(),
		})
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()

	case errorMsg:
		m.isLoading = false
		m.err = msg
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m chatModel) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}

	if strings.HasPrefix(input, "/") {
		return m.handleCommand(input)
	}

	m.history = append(m.history, chatMessage{
		role:    "user",
		content: input,
		time:    time.Now(),
	})

	m.textinput.Reset()
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
	m.isLoading = true
	m.err = nil

	return m, tea.Batch(
		m.spinner.Tick,
		m.processInput(input),
	)
}

func (m chatModel) handleCommand(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	cmd := parts[0]

	switch cmd {
	case "/quit", "/exit", "/q":
		return m, tea.Quit

	case "/clear":
		m.history = []chatMessage{}
		m.viewport.SetContent("")
		m.textinput.Reset()
		return m, nil

	case "/reset":
		m.engine.reset()
		m.history = append(m.history, chatMessage{
			role:    "assistant",
			content: "Session memory cleared. We can start over.",
			time:    time.Now(),
		})

	case "/dump":
		dump, err := m.engine.dump()
		if err != nil {
			dump = fmt.Sprintf("could not render session: %v", err)
		}
		m.history = append(m.history, chatMessage{
			role:    "assistant",
			content: "```json\n" + dump + "\n```",
			time:    time.Now(),
		})

	case "/help":
		help := `## Available Commands

| Command | Description |
|---------|-------------|
| /help | Show this help message |
| /dump | Show what the assistant has learned this session |
| /reset | Forget the session and start over |
| /clear | Clear the chat transcript |
| /quit, /exit, /q | Exit the chat |

## Tips
- **Enter** to send a message
- **Ctrl+C** or **Esc** to exit
- Tell me the language and platform early and I will remember them
- Paste JSON and I will read the text inside it
`
		m.history = append(m.history, chatMessage{
			role:    "assistant",
			content: help,
			time:    time.Now(),
		})

	default:
		m.history = append(m.history, chatMessage{
			role:    "assistant",
			content: fmt.Sprintf("Unknown command: `%s`. Type `/help` for available commands.", cmd),
			time:    time.Now(),
		})
	}

	m.textinput.Reset()
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
	return m, nil
}

func (m chatModel) processInput(input string) tea.Cmd {
	return func() tea.Msg {
		reply := m.engine.turn(input)
		logging.Chat("turn done, confidence %.2f", reply.Confidence)
		return responseMsg(reply.Text)
	}
}

func (m chatModel) renderHistory() string {
	var sb strings.Builder

	for _, msg := range m.history {
		if msg.role == "user" {
			sb.WriteString(userNameStyle.Render("You") + "\n")
			sb.WriteString(msg.content)
			sb.WriteString("\n\n")
		} else {
			sb.WriteString(aiNameStyle.Render("diyai") + "\n")
			sb.WriteString(m.safeRenderMarkdown(msg.content))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// safeRenderMarkdown renders markdown, falling back to plain text when the
// renderer is unavailable or panics on odd terminal state.
func (m chatModel) safeRenderMarkdown(content string) (out string) {
	if m.renderer == nil {
		return content
	}
	defer func() {
		if r := recover(); r != nil {
			out = content
		}
	}()
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

func (m chatModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()

	chatView := m.viewport.View()
	if m.isLoading {
		chatView += "\n" + spinnerStyle.Render(m.spinner.View()) + " Thinking..."
	}
	if m.err != nil {
		chatView += "\n" + errorStyle.Render("Error: "+m.err.Error())
	}

	inputArea := inputBoxStyle.Render(m.textinput.View())

	footer := mutedStyle.Render("Enter: send • /help: commands • Ctrl+C: exit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		chatView,
		inputArea,
		footer,
	)
}

func (m chatModel) renderHeader() string {
	title := headerStyle.Render("diyai")
	var status string
	if m.isLoading {
		status = statusBusy.Render("● Thinking")
	} else {
		status = statusOKStyle.Render("● Ready")
	}

	line := lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", status)
	divider := dividerStyle.Render(strings.Repeat("─", max(m.width, 1)))

	return lipgloss.JoinVertical(lipgloss.Left, line, divider)
}

// runChat starts the interactive chat interface.
func runChat() error {
	e, err := newEngine(cfg)
	if err != nil {
		return err
	}
	defer e.Close()

	p := tea.NewProgram(
		initChat(e),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
