package model

import "strings"

// ChatRole identifies who produced a chat turn.
type ChatRole string

// Chat roles.
const (
	RoleUser ChatRole = "user"
	RoleBot  ChatRole = "bot"
)

// ChatReply is the backend's response to a chat message. An empty Reply
// means the backend answered without one.
type ChatReply struct {
	Reply string `json:"reply"`
}

// ChatTurn is a single entry in the conversation.
type ChatTurn struct {
	Role ChatRole
	Text string
}

// Transcript is the ordered, append-only record of a chat session. It lives
// only in memory and is discarded when the process exits.
type Transcript struct {
	turns []ChatTurn
}

// Append adds a turn to the end of the transcript. Whitespace-only text is
// dropped so blank submissions never change the conversation.
func (t *Transcript) Append(role ChatRole, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	t.turns = append(t.turns, ChatTurn{Role: role, Text: text})
	return true
}

// Turns returns a copy of the transcript entries in order.
func (t *Transcript) Turns() []ChatTurn {
	out := make([]ChatTurn, len(t.turns))
	copy(out, t.turns)
	return out
}

// Len returns the number of turns recorded so far.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// Empty reports whether the transcript has no turns yet.
func (t *Transcript) Empty() bool {
	return len(t.turns) == 0
}
