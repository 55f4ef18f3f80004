package components

import (
	"encoding/json"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uzpay-labs/fraudscope/internal/model"
	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

// DataTableModel renders the backend dataset with a status banner. Every
// load replaces the previous snapshot wholesale.
type DataTableModel struct {
	theme   themes.Theme
	status  string
	data    *model.TableData
	table   table.Model
	spinner spinner.Model
	width   int
	height  int
	loading bool
	failed  bool
}

// NewDataTableModel creates an empty data viewer.
func NewDataTableModel(theme themes.Theme) DataTableModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return DataTableModel{
		theme:   theme,
		spinner: s,
	}
}

// BeginLoad clears the previous table and shows the loading banner. The
// parent issues the actual fetch.
func (m *DataTableModel) BeginLoad() tea.Cmd {
	m.data = nil
	m.failed = false
	m.loading = true
	m.status = "Loading data..."
	return m.spinner.Tick
}

// SetPayload interprets a /csv_data response. A nil payload means the
// backend was unreachable (the connection notice is already on screen).
func (m *DataTableModel) SetPayload(raw json.RawMessage) {
	m.loading = false

	if raw == nil {
		m.failed = true
		m.status = "Unable to load CSV data from backend."
		return
	}

	data, err := model.ParseTable(raw)
	if err != nil {
		m.failed = true
		m.status = "CSV endpoint responded without tabular data."
		return
	}

	m.data = data
	m.status = data.Summary()
	m.rebuild()
}

// Data returns the current snapshot, or nil before the first load.
func (m DataTableModel) Data() *model.TableData {
	return m.data
}

// Loading reports whether a fetch is in flight.
func (m DataTableModel) Loading() bool {
	return m.loading
}

// Failed reports whether the last load ended in an error banner.
func (m DataTableModel) Failed() bool {
	return m.failed
}

// Status returns the current banner text.
func (m DataTableModel) Status() string {
	return m.status
}

// rebuild constructs the bubbles table from the snapshot.
func (m *DataTableModel) rebuild() {
	if m.data == nil || len(m.data.Columns) == 0 {
		m.table = table.Model{}
		return
	}

	columns := make([]table.Column, len(m.data.Columns))
	for i, name := range m.data.Columns {
		columns[i] = table.Column{Title: name, Width: columnWidth(name, m.data)}
	}

	rows := make([]table.Row, len(m.data.Rows))
	for i, record := range m.data.Rows {
		cells := make(table.Row, len(m.data.Columns))
		for j, col := range m.data.Columns {
			cells[j] = model.FormatCell(record[col])
		}
		rows[i] = cells
	}

	tableHeight := m.height - 6
	if tableHeight < 3 {
		tableHeight = 3
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Bold(true).
		Foreground(m.theme.Primary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Border).
		BorderBottom(true)
	styles.Selected = m.theme.Highlighted

	m.table = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
		table.WithStyles(styles),
	)
}

// columnWidth sizes a column to its widest cell, capped to keep wide
// datasets on screen.
func columnWidth(name string, data *model.TableData) int {
	width := len(name)
	for _, row := range data.Rows {
		if l := len(model.FormatCell(row[name])); l > width {
			width = l
		}
	}
	if width > 24 {
		width = 24
	}
	if width < 4 {
		width = 4
	}
	return width
}

// Update handles messages.
func (m DataTableModel) Update(msg tea.Msg) (DataTableModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.data != nil {
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the status banner and, when data is present, the table.
func (m DataTableModel) View() string {
	title := m.theme.Title.Render("Transaction Dataset")

	var banner string
	switch {
	case m.loading:
		banner = m.theme.StatusPending.Render(m.spinner.View() + " " + m.status)
	case m.failed:
		banner = m.theme.StatusError.Render(m.status)
	case m.data != nil:
		banner = m.theme.StatusSuccess.Render(m.status)
	default:
		banner = m.theme.StatusPending.Render("No data loaded yet.")
	}

	sections := []string{title, banner}

	if m.data != nil && !m.failed {
		if len(m.data.Columns) == 0 {
			sections = append(sections, m.theme.StatusWarning.Render("No columns available in CSV."))
		} else if len(m.data.Rows) == 0 {
			header := m.renderEmptyHeader()
			sections = append(sections, header, m.theme.StatusPending.Render("No rows available in CSV."))
		} else {
			sections = append(sections, m.table.View())
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderEmptyHeader shows column names when the dataset has a header but no
// rows.
func (m DataTableModel) renderEmptyHeader() string {
	headers := make([]string, len(m.data.Columns))
	for i, c := range m.data.Columns {
		headers[i] = m.theme.Bold.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, joinWithGap(headers)...)
}

func joinWithGap(items []string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, it)
	}
	return out
}

// Resize updates the component size.
func (m *DataTableModel) Resize(width, height int) {
	m.width = width
	m.height = height
	if m.data != nil {
		m.rebuild()
	}
}
