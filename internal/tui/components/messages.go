package components

import "github.com/uzpay-labs/fraudscope/internal/model"

// PredictRequestMsg is emitted by the fraud form when the user submits a
// transaction for analysis.
type PredictRequestMsg struct {
	Input model.TransactionInput
}

// ChatRequestMsg is emitted by the chat view when the user sends a message.
type ChatRequestMsg struct {
	Message string
}
