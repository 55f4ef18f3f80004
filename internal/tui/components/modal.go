package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

// ModalModel is the single shared overlay for connection errors. A second
// Show while open just replaces the text; there is no stacking.
type ModalModel struct {
	theme   themes.Theme
	title   string
	message string
	visible bool
}

// NewModalModel creates a hidden modal.
func NewModalModel(theme themes.Theme) ModalModel {
	return ModalModel{theme: theme}
}

// Show displays the overlay with the given title and message.
func (m *ModalModel) Show(title, message string) {
	m.title = title
	m.message = message
	m.visible = true
}

// Close hides the overlay.
func (m *ModalModel) Close() {
	m.visible = false
}

// Visible reports whether the overlay is on screen.
func (m ModalModel) Visible() bool {
	return m.visible
}

// Title returns the current title text.
func (m ModalModel) Title() string {
	return m.title
}

// Message returns the current message text.
func (m ModalModel) Message() string {
	return m.message
}

// View renders the overlay centered in the given area.
func (m ModalModel) View(width, height int) string {
	if !m.visible {
		return ""
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render(m.title),
		"",
		m.theme.Normal.Render(m.message),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press Enter to dismiss"),
	)

	box := m.theme.RoundedBox.
		BorderForeground(m.theme.Error).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
