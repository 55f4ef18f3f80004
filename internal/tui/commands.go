package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uzpay-labs/fraudscope/internal/encoding"
	"github.com/uzpay-labs/fraudscope/internal/model"
)

// submitPrediction assembles the feature vector and runs the backend call.
func (m Model) submitPrediction(in model.TransactionInput) tea.Cmd {
	return func() tea.Msg {
		vector := encoding.Assemble(in)
		return predictionMsg{prediction: m.client.PredictFraud(context.Background(), vector)}
	}
}

// sendChat runs one chat roundtrip.
func (m Model) sendChat(message string) tea.Cmd {
	return func() tea.Msg {
		return chatReplyMsg{reply: m.client.Chat(context.Background(), message)}
	}
}

// loadTable fetches the dataset.
func (m Model) loadTable() tea.Cmd {
	return func() tea.Msg {
		return tableLoadedMsg{payload: m.client.FetchTable(context.Background())}
	}
}

// waitForNotice delivers the next connection notice from the API client.
// It re-arms itself after each delivery.
func (m Model) waitForNotice() tea.Cmd {
	return func() tea.Msg {
		return <-m.notices
	}
}
