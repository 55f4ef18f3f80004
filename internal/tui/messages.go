package tui

import (
	"encoding/json"

	"github.com/uzpay-labs/fraudscope/internal/model"
)

// Backend roundtrip results.
type predictionMsg struct {
	prediction *model.Prediction
}

type chatReplyMsg struct {
	reply *model.ChatReply
}

type tableLoadedMsg struct {
	payload json.RawMessage
}

// connectionNoticeMsg surfaces an API connection failure in the modal.
type connectionNoticeMsg struct {
	title   string
	message string
}
