package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzpay-labs/fraudscope/internal/model"
	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func typeText(m ChatModel, text string) ChatModel {
	for _, r := range text {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestChatModel_ActivateSeedsGreetingOnce(t *testing.T) {
	transcript := &model.Transcript{}
	m := NewChatModel(transcript, themes.Default)

	m.Activate()
	require.Equal(t, 1, transcript.Len())
	assert.Equal(t, model.RoleBot, transcript.Turns()[0].Role)
	assert.Equal(t, Greeting, transcript.Turns()[0].Text)

	// A second activation must not seed again.
	m.Activate()
	assert.Equal(t, 1, transcript.Len())
}

func TestChatModel_BlankSubmitLeavesTranscriptUnchanged(t *testing.T) {
	transcript := &model.Transcript{}
	m := NewChatModel(transcript, themes.Default)
	m.Activate()
	before := transcript.Len()

	m, cmd := m.Update(enterKey())
	assert.Nil(t, cmd)
	assert.Equal(t, before, transcript.Len())

	m = typeText(m, "   ")
	_, cmd = m.Update(enterKey())
	assert.Nil(t, cmd)
	assert.Equal(t, before, transcript.Len())
}

func TestChatModel_SubmitAppendsUserTurnAndRequests(t *testing.T) {
	transcript := &model.Transcript{}
	m := NewChatModel(transcript, themes.Default)
	m.Activate()

	m = typeText(m, "hello")
	m, cmd := m.Update(enterKey())
	require.NotNil(t, cmd)
	assert.True(t, m.Waiting())

	turns := transcript.Turns()
	require.Equal(t, 2, transcript.Len())
	assert.Equal(t, model.RoleUser, turns[1].Role)
	assert.Equal(t, "hello", turns[1].Text)

	// The batched command must carry the chat request.
	found := false
	collectMsgs(cmd, func(msg tea.Msg) {
		if req, ok := msg.(ChatRequestMsg); ok {
			found = true
			assert.Equal(t, "hello", req.Message)
		}
	})
	assert.True(t, found, "expected a ChatRequestMsg")
}

func TestChatModel_ReplyGrowsTranscriptByExactlyTwo(t *testing.T) {
	transcript := &model.Transcript{}
	m := NewChatModel(transcript, themes.Default)
	m.Activate()
	before := transcript.Len()

	m = typeText(m, "hello")
	m, _ = m.Update(enterKey())
	m.HandleReply(&model.ChatReply{Reply: "hi there"})

	assert.False(t, m.Waiting())
	require.Equal(t, before+2, transcript.Len())

	turns := transcript.Turns()
	assert.Equal(t, model.RoleUser, turns[before].Role)
	assert.Equal(t, "hello", turns[before].Text)
	assert.Equal(t, model.RoleBot, turns[before+1].Role)
	assert.Equal(t, "hi there", turns[before+1].Text)
}

func TestChatModel_FailedReplyFallsBack(t *testing.T) {
	tests := []struct {
		reply *model.ChatReply
		name  string
	}{
		{nil, "backend unreachable"},
		{&model.ChatReply{}, "reply missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transcript := &model.Transcript{}
			m := NewChatModel(transcript, themes.Default)
			m.Activate()

			m = typeText(m, "hello")
			m, _ = m.Update(enterKey())
			m.HandleReply(tt.reply)

			turns := transcript.Turns()
			last := turns[len(turns)-1]
			assert.Equal(t, model.RoleBot, last.Role)
			assert.Equal(t, Fallback, last.Text)
		})
	}
}

func TestChatModel_SubmitWhileWaitingIsIgnored(t *testing.T) {
	transcript := &model.Transcript{}
	m := NewChatModel(transcript, themes.Default)
	m.Activate()

	m = typeText(m, "first")
	m, _ = m.Update(enterKey())
	require.True(t, m.Waiting())
	count := transcript.Len()

	m = typeText(m, "second")
	_, cmd := m.Update(enterKey())
	assert.Nil(t, cmd)
	assert.Equal(t, count, transcript.Len())
}

// collectMsgs runs a command tree and feeds every produced message to fn.
func collectMsgs(cmd tea.Cmd, fn func(tea.Msg)) {
	if cmd == nil {
		return
	}
	msg := cmd()
	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			collectMsgs(c, fn)
		}
	default:
		fn(msg)
	}
}
