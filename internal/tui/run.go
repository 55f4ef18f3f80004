package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uzpay-labs/fraudscope/internal/api"
)

// channelNotifier forwards API connection notices into the Bubble Tea
// message loop.
type channelNotifier struct {
	ch chan connectionNoticeMsg
}

// Notify implements api.Notifier. It never blocks a network goroutine: if
// the buffer is full the notice is dropped, the modal is already showing
// an identical one.
func (n *channelNotifier) Notify(title, message string) {
	select {
	case n.ch <- connectionNoticeMsg{title: title, message: message}:
	default:
	}
}

// Run starts the console and blocks until the user quits or ctx is
// canceled.
func Run(ctx context.Context, baseURL string, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	notices := make(chan connectionNoticeMsg, 8)
	if cfg.Client == nil {
		cfg.Client = api.New(baseURL, &channelNotifier{ch: notices})
	}

	p := tea.NewProgram(
		newModel(cfg, notices),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("console failed: %w", err)
	}
	return nil
}
