package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uzpay-labs/fraudscope/internal/model"
	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

// Greeting seeds an empty transcript on first activation.
const Greeting = "Hello! I am your BFSI Chatbot."

// Fallback is appended when the backend fails or answers without a reply.
const Fallback = "Sorry, backend couldn't respond."

// ChatModel manages the conversation view: transcript, input line, and the
// transient thinking indicator.
type ChatModel struct {
	theme      themes.Theme
	transcript *model.Transcript
	viewport   viewport.Model
	input      textinput.Model
	spinner    spinner.Model
	width      int
	height     int
	waiting    bool
}

// NewChatModel creates a chat view over the given transcript. The
// transcript is owned by the caller so it survives page switches.
func NewChatModel(transcript *model.Transcript, theme themes.Theme) ChatModel {
	in := textinput.New()
	in.Placeholder = "Ask about your transactions..."
	in.CharLimit = 500
	in.Prompt = "> "

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	vp := viewport.New(60, 16)

	return ChatModel{
		theme:      theme,
		transcript: transcript,
		viewport:   vp,
		input:      in,
		spinner:    s,
	}
}

// Activate prepares the view when its page becomes current: seeds the fixed
// greeting into an empty transcript, focuses the input, and re-renders.
func (m *ChatModel) Activate() tea.Cmd {
	if m.transcript.Empty() {
		m.transcript.Append(model.RoleBot, Greeting)
	}
	m.refresh()
	m.input.Focus()
	return textinput.Blink
}

// Update handles messages.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return m.submit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.waiting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			m.refresh()
			return m, cmd
		}
	}

	return m, nil
}

// submit sends the typed message. Blank input is ignored, and a roundtrip
// already in flight blocks another one.
func (m ChatModel) submit() (ChatModel, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	message := strings.TrimSpace(m.input.Value())
	if message == "" {
		return m, nil
	}

	m.transcript.Append(model.RoleUser, message)
	m.input.SetValue("")
	m.waiting = true
	m.refresh()

	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return ChatRequestMsg{Message: message} },
	)
}

// HandleReply removes the thinking indicator and appends the bot turn.
func (m *ChatModel) HandleReply(reply *model.ChatReply) {
	m.waiting = false
	if reply != nil && reply.Reply != "" {
		m.transcript.Append(model.RoleBot, reply.Reply)
	} else {
		m.transcript.Append(model.RoleBot, Fallback)
	}
	m.refresh()
}

// Waiting reports whether a chat roundtrip is in flight.
func (m ChatModel) Waiting() bool {
	return m.waiting
}

// refresh rebuilds the viewport content and scrolls to the latest turn.
func (m *ChatModel) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m ChatModel) renderTranscript() string {
	bubbleWidth := m.viewport.Width - 8
	if bubbleWidth < 20 {
		bubbleWidth = 20
	}

	userBubble := lipgloss.NewStyle().
		Background(m.theme.Primary).
		Foreground(m.theme.Foreground).
		Padding(0, 1).
		MaxWidth(bubbleWidth)
	botBubble := lipgloss.NewStyle().
		Background(m.theme.Border).
		Foreground(m.theme.Foreground).
		Padding(0, 1).
		MaxWidth(bubbleWidth)

	var lines []string
	for _, turn := range m.transcript.Turns() {
		if turn.Role == model.RoleUser {
			bubble := userBubble.Render(turn.Text)
			lines = append(lines, lipgloss.PlaceHorizontal(m.viewport.Width, lipgloss.Right, bubble))
		} else {
			lines = append(lines, botBubble.Render(turn.Text))
		}
	}

	// The thinking indicator is visual only; it never joins the transcript.
	if m.waiting {
		lines = append(lines, m.theme.StatusPending.Render(m.spinner.View()+" Thinking..."))
	}

	return strings.Join(lines, "\n\n")
}

// View renders the transcript above the input line.
func (m ChatModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("BFSI Chatbot"),
		m.viewport.View(),
		"",
		m.input.View(),
	)
}

// Resize updates the component size.
func (m *ChatModel) Resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - 6
	if vpHeight < 4 {
		vpHeight = 4
	}
	m.viewport.Width = width
	m.viewport.Height = vpHeight
	m.input.Width = width - 4
	m.refresh()
}
