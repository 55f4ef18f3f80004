package tui

import (
	"encoding/json"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzpay-labs/fraudscope/internal/api"
	"github.com/uzpay-labs/fraudscope/internal/model"
)

type discardNotifier struct{}

func (discardNotifier) Notify(string, string) {}

func testModel() Model {
	cfg := defaultConfig()
	cfg.Client = api.New("http://127.0.0.1:8000", discardNotifier{})
	return newModel(cfg, make(chan connectionNoticeMsg, 1))
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func tabKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

func TestModel_StartsOnHome(t *testing.T) {
	m := testModel()
	assert.Equal(t, PageHome, m.Page())
	assert.Contains(t, m.View(), "BFSI Fraud Detection Demo")
}

func TestModel_TabCyclesThroughAllPages(t *testing.T) {
	m := testModel()

	want := []Page{PageDetect, PageChat, PageData, PageHome}
	for _, page := range want {
		m, _ = update(m, tabKey())
		assert.Equal(t, page, m.Page())
	}
}

func TestModel_ExactlyOneTabHighlighted(t *testing.T) {
	m := testModel()

	for i := 0; i < int(pageCount); i++ {
		header := m.renderHeader()
		selected := m.theme.Selected.Render(" " + m.Page().String() + " ")
		assert.Equal(t, 1, strings.Count(header, selected),
			"page %s should be the only highlighted tab", m.Page())
		m, _ = update(m, tabKey())
	}
}

func TestModel_EnteringDataPageStartsLoad(t *testing.T) {
	m := testModel()
	m, _ = update(m, tabKey()) // Detect
	m, _ = update(m, tabKey()) // Chat
	m, cmd := update(m, tabKey())

	require.Equal(t, PageData, m.Page())
	assert.True(t, m.dataTable.Loading())
	assert.NotNil(t, cmd, "navigation must issue the fetch")
}

func TestModel_EnteringChatSeedsGreeting(t *testing.T) {
	m := testModel()
	require.True(t, m.transcript.Empty())

	m, _ = update(m, tabKey())
	m, _ = update(m, tabKey())

	require.Equal(t, PageChat, m.Page())
	assert.Equal(t, 1, m.transcript.Len())
}

func TestModel_PredictionMsgReachesForm(t *testing.T) {
	m := testModel()
	one := 1
	m, _ = update(m, predictionMsg{prediction: &model.Prediction{IsFraud: &one, Probability: 0.9}})

	m.page = PageDetect
	assert.Contains(t, m.View(), "Fraud Detected")
	assert.False(t, m.form.Submitting())
}

func TestModel_TableLoadedMsgReachesDataTable(t *testing.T) {
	m := testModel()
	m, _ = update(m, tableLoadedMsg{payload: json.RawMessage(`[{"Transaction_Amount": 7}]`)})

	require.NotNil(t, m.dataTable.Data())
	assert.Len(t, m.dataTable.Data().Rows, 1)
}

func TestModel_ConnectionNoticeOpensModal(t *testing.T) {
	m := testModel()
	m, cmd := update(m, connectionNoticeMsg{title: "Connection Error", message: "backend is down"})

	assert.True(t, m.modal.Visible())
	assert.NotNil(t, cmd, "notice handling must re-arm the listener")
	assert.Contains(t, m.View(), "Connection Error")
}

func TestModel_ModalCapturesKeysUntilDismissed(t *testing.T) {
	m := testModel()
	m, _ = update(m, connectionNoticeMsg{title: "Connection Error", message: "backend is down"})
	require.True(t, m.modal.Visible())

	m, _ = update(m, tabKey())
	assert.Equal(t, PageHome, m.Page(), "tab must not navigate while the modal is open")
	assert.True(t, m.modal.Visible())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.modal.Visible())

	m, _ = update(m, tabKey())
	assert.Equal(t, PageDetect, m.Page())
}

func TestModel_QuitOnlyOnPagesWithoutTextInput(t *testing.T) {
	q := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}

	m := testModel()
	_, cmd := update(m, q)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m = testModel()
	m, _ = update(m, tabKey()) // Detect: 'q' is form input
	m, cmd = update(m, q)
	assert.False(t, producesQuit(cmd))

	m, _ = update(m, tabKey()) // Chat: 'q' is chat input
	_, cmd = update(m, q)
	assert.False(t, producesQuit(cmd))
}

func producesQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_CtrlCQuitsEverywhere(t *testing.T) {
	m := testModel()
	for i := 0; i < int(pageCount); i++ {
		next, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
		assert.Empty(t, next.View(), "quitting view must be blank")
		m, _ = update(m, tabKey())
	}
}
