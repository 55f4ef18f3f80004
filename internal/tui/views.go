package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.modal.Visible() {
		return m.modal.View(m.width, m.height)
	}

	var body string
	switch m.page {
	case PageHome:
		body = m.renderHome()
	case PageDetect:
		body = m.form.View()
	case PageChat:
		body = m.chat.View()
	case PageData:
		body = m.dataTable.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.theme.Box.Render(body),
		m.renderFooter(),
	)
}

// renderHeader draws the title bar and page tabs. Exactly one tab carries
// the active highlight.
func (m Model) renderHeader() string {
	title := m.theme.Title.
		UnsetMarginBottom().
		Foreground(m.theme.Primary).
		Render("🛡️ fraudscope")

	tabs := make([]string, 0, int(pageCount))
	for p := PageHome; p < pageCount; p++ {
		label := " " + p.String() + " "
		if p == m.page {
			tabs = append(tabs, m.theme.Selected.Render(label))
		} else {
			tabs = append(tabs, m.theme.Normal.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		title,
		"   ",
		strings.Join(tabs, " "),
	)
}

// renderHome draws the landing page.
func (m Model) renderHome() string {
	intro := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("BFSI Fraud Detection Demo"),
		m.theme.Normal.Render("A console for the fraud-detection demo backend."),
		"",
		m.theme.Normal.Render("Detect   Score a transaction against the fraud model."),
		m.theme.Normal.Render("Chatbot  Ask the banking assistant a question."),
		m.theme.Normal.Render("Data     Browse the transaction dataset."),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Backend: "+m.client.BaseURL()),
	)

	return m.theme.RoundedBox.Render(intro)
}

// renderFooter draws the help line.
func (m Model) renderFooter() string {
	hints := []string{"[Tab] Switch page"}

	switch m.page {
	case PageDetect:
		hints = append(hints, "[↑↓] Field", "[←→] Choice", "[Enter] Next/Submit")
	case PageChat:
		hints = append(hints, "[Enter] Send")
	case PageData:
		hints = append(hints, "[↑↓] Scroll", "[q] Quit")
	default:
		hints = append(hints, "[q] Quit")
	}

	return lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(" " + strings.Join(hints, "  "))
}
