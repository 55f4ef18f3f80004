package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_AppendOrder(t *testing.T) {
	var tr Transcript
	assert.True(t, tr.Empty())

	assert.True(t, tr.Append(RoleBot, "Hello! I am your BFSI Chatbot."))
	assert.True(t, tr.Append(RoleUser, "hello"))
	assert.True(t, tr.Append(RoleBot, "hi there"))

	turns := tr.Turns()
	assert.Equal(t, 3, tr.Len())
	assert.Equal(t, RoleBot, turns[0].Role)
	assert.Equal(t, RoleUser, turns[1].Role)
	assert.Equal(t, "hi there", turns[2].Text)
}

func TestTranscript_BlankMessagesAreDropped(t *testing.T) {
	var tr Transcript
	assert.False(t, tr.Append(RoleUser, ""))
	assert.False(t, tr.Append(RoleUser, "   \t\n"))
	assert.Equal(t, 0, tr.Len())
}

func TestTranscript_TurnsReturnsCopy(t *testing.T) {
	var tr Transcript
	tr.Append(RoleUser, "one")

	turns := tr.Turns()
	turns[0].Text = "mutated"

	assert.Equal(t, "one", tr.Turns()[0].Text)
}

func TestPrediction_Fraudulent(t *testing.T) {
	one, zero := 1, 0
	assert.True(t, Prediction{IsFraud: &one}.Fraudulent())
	assert.False(t, Prediction{IsFraud: &zero}.Fraudulent())
	assert.False(t, Prediction{}.Fraudulent())
}
