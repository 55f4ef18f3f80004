package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uzpay-labs/fraudscope/internal/api"
	"github.com/uzpay-labs/fraudscope/internal/model"
	"github.com/uzpay-labs/fraudscope/internal/tui/components"
	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

// Page identifies one of the console's views. Exactly one page is visible
// at a time.
type Page int

// Pages, in tab order.
const (
	PageHome Page = iota
	PageDetect
	PageChat
	PageData
	pageCount
)

// String returns the tab label for the page.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageDetect:
		return "Detect"
	case PageChat:
		return "Chatbot"
	case PageData:
		return "Data"
	default:
		return "?"
	}
}

// Model holds the console state: the current page, the per-page components,
// and the shared modal overlay. All mutation happens through Update.
type Model struct {
	client     *api.Client
	transcript *model.Transcript
	notices    <-chan connectionNoticeMsg
	theme      themes.Theme
	keymap     KeyMap
	form       components.FraudFormModel
	chat       components.ChatModel
	dataTable  components.DataTableModel
	modal      components.ModalModel
	config     Config
	page       Page
	width      int
	height     int
	quitting   bool
}

// newModel creates the console model with the given configuration.
func newModel(cfg Config, notices <-chan connectionNoticeMsg) Model {
	transcript := &model.Transcript{}

	return Model{
		client:     cfg.Client,
		transcript: transcript,
		notices:    notices,
		theme:      cfg.Theme,
		keymap:     DefaultKeyMap(),
		form:       components.NewFraudFormModel(cfg.Theme),
		chat:       components.NewChatModel(transcript, cfg.Theme),
		dataTable:  components.NewDataTableModel(cfg.Theme),
		modal:      components.NewModalModel(cfg.Theme),
		config:     cfg,
		page:       PageHome,
		width:      cfg.Width,
		height:     cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.form.Init(),
		m.waitForNotice(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, next, cmd := m.handleGlobalKeys(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case connectionNoticeMsg:
		m.modal.Show(msg.title, msg.message)
		return m, m.waitForNotice()

	case components.PredictRequestMsg:
		return m, m.submitPrediction(msg.Input)

	case components.ChatRequestMsg:
		return m, m.sendChat(msg.Message)

	case predictionMsg:
		m.form.SetResult(msg.prediction)
		return m, nil

	case chatReplyMsg:
		m.chat.HandleReply(msg.reply)
		return m, nil

	case tableLoadedMsg:
		m.dataTable.SetPayload(msg.payload)
		return m, nil
	}

	// Delegate everything else to the active page.
	switch m.page {
	case PageDetect:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		cmds = append(cmds, cmd)

	case PageChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		cmds = append(cmds, cmd)

	case PageData:
		var cmd tea.Cmd
		m.dataTable, cmd = m.dataTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys processes keys that work on any page. The bool result
// reports whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return true, m, tea.Quit
	}

	// An open modal captures all input until dismissed.
	if m.modal.Visible() {
		if key.Matches(msg, m.keymap.Dismiss) {
			m.modal.Close()
		}
		return true, m, nil
	}

	if key.Matches(msg, m.keymap.NextPage) {
		cmd := m.navigate((m.page + 1) % pageCount)
		return true, m, cmd
	}

	// 'q' quits only on pages without a text input.
	if key.Matches(msg, m.keymap.Quit) && (m.page == PageHome || m.page == PageData) {
		m.quitting = true
		return true, m, tea.Quit
	}

	return false, m, nil
}

// navigate switches the visible page and triggers its activation work: the
// data page reloads the dataset, the chat page seeds and re-renders the
// transcript.
func (m *Model) navigate(page Page) tea.Cmd {
	m.page = page

	switch page {
	case PageData:
		return tea.Batch(m.dataTable.BeginLoad(), m.loadTable())
	case PageChat:
		return m.chat.Activate()
	default:
		return nil
	}
}

// Page returns the currently visible page.
func (m Model) Page() Page {
	return m.page
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	contentHeight := m.height - 5
	if contentHeight < 6 {
		contentHeight = 6
	}
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	m.form.Resize(contentWidth, contentHeight)
	m.chat.Resize(contentWidth, contentHeight)
	m.dataTable.Resize(contentWidth, contentHeight)
}
