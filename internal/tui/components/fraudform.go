package components

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/uzpay-labs/fraudscope/internal/encoding"
	"github.com/uzpay-labs/fraudscope/internal/model"
	"github.com/uzpay-labs/fraudscope/internal/tui/themes"
)

// Field positions in the form, top to bottom.
const (
	fieldAmount = iota
	fieldLocation
	fieldMerchantID
	fieldDeviceID
	fieldCardType
	fieldCurrency
	fieldStatus
	fieldPrevCount
	fieldDistance
	fieldTimeSince
	fieldAuthMethod
	fieldVelocity
	fieldCategory
	fieldDate
	fieldTime
	fieldCount // submit button sits at this index
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
)

// formField is one row of the fraud form: either a free-text input or a
// cycling selection over a categorical domain.
type formField struct {
	input  textinput.Model
	label  string
	values []string
	choice int
	kind   fieldKind
}

func (f formField) value() string {
	if f.kind == fieldChoice {
		if len(f.values) == 0 {
			return ""
		}
		return f.values[f.choice]
	}
	return f.input.Value()
}

// FraudFormModel manages the transaction entry form and its result panel.
type FraudFormModel struct {
	theme      themes.Theme
	result     *model.Prediction
	fields     []formField
	spinner    spinner.Model
	focus      int
	width      int
	height     int
	submitting bool
	answered   bool
}

// NewFraudFormModel creates the form with today's date and time prefilled.
func NewFraudFormModel(theme themes.Theme) FraudFormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	now := time.Now()

	m := FraudFormModel{
		theme:   theme,
		spinner: s,
		fields:  make([]formField, fieldCount),
	}

	m.fields[fieldAmount] = textField("Amount", "250000.50")
	m.fields[fieldLocation] = choiceField("Location", encoding.DomainLocation)
	m.fields[fieldMerchantID] = textField("Merchant ID", "4521")
	m.fields[fieldDeviceID] = textField("Device ID", "88")
	m.fields[fieldCardType] = choiceField("Card type", encoding.DomainCardType)
	m.fields[fieldCurrency] = choiceField("Currency", encoding.DomainCurrency)
	m.fields[fieldStatus] = choiceField("Status", encoding.DomainStatus)
	m.fields[fieldPrevCount] = textField("Previous transactions", "14")
	m.fields[fieldDistance] = textField("Distance since last (km)", "3.2")
	m.fields[fieldTimeSince] = textField("Minutes since last", "42.5")
	m.fields[fieldAuthMethod] = choiceField("Authentication", encoding.DomainAuthMethod)
	m.fields[fieldVelocity] = textField("Velocity", "2")
	m.fields[fieldCategory] = choiceField("Category", encoding.DomainCategory)
	m.fields[fieldDate] = textField("Date", "2006-01-02")
	m.fields[fieldTime] = textField("Time", "15:04")

	m.fields[fieldDate].input.SetValue(now.Format("2006-01-02"))
	m.fields[fieldTime].input.SetValue(now.Format("15:04"))

	m.fields[0].input.Focus()
	return m
}

func textField(label, placeholder string) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 32
	in.Prompt = ""
	return formField{kind: fieldText, label: label, input: in}
}

func choiceField(label, domain string) formField {
	return formField{kind: fieldChoice, label: label, values: encoding.Values(domain)}
}

// Init returns initial commands.
func (m FraudFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m FraudFormModel) Update(msg tea.Msg) (FraudFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.submitting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

func (m FraudFormModel) handleKey(msg tea.KeyMsg) (FraudFormModel, tea.Cmd) {
	switch msg.String() {
	case "down":
		m.setFocus(m.focus + 1)
		return m, nil

	case "up", "shift+tab":
		m.setFocus(m.focus - 1)
		return m, nil

	case "left", "right":
		if m.focus < fieldCount && m.fields[m.focus].kind == fieldChoice {
			m.cycleChoice(msg.String() == "right")
			return m, nil
		}

	case "enter":
		if m.focus == fieldCount {
			return m.submit()
		}
		m.setFocus(m.focus + 1)
		return m, nil
	}

	if m.focus < fieldCount && m.fields[m.focus].kind == fieldText {
		var cmd tea.Cmd
		m.fields[m.focus].input, cmd = m.fields[m.focus].input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *FraudFormModel) setFocus(next int) {
	if next < 0 {
		next = 0
	}
	if next > fieldCount {
		next = fieldCount
	}
	if m.focus < fieldCount {
		m.fields[m.focus].input.Blur()
	}
	m.focus = next
	if m.focus < fieldCount && m.fields[m.focus].kind == fieldText {
		m.fields[m.focus].input.Focus()
	}
}

func (m *FraudFormModel) cycleChoice(forward bool) {
	f := &m.fields[m.focus]
	if len(f.values) == 0 {
		return
	}
	if forward {
		f.choice = (f.choice + 1) % len(f.values)
	} else {
		f.choice = (f.choice - 1 + len(f.values)) % len(f.values)
	}
}

// submit reads the form and asks the parent to run the prediction. The
// submit control stays disabled until SetResult is called.
func (m FraudFormModel) submit() (FraudFormModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	input := m.readInput()
	m.submitting = true
	m.answered = false
	m.result = nil
	return m, tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return PredictRequestMsg{Input: input} },
	)
}

// SetResult records the backend's answer and re-enables the submit control.
func (m *FraudFormModel) SetResult(pred *model.Prediction) {
	m.submitting = false
	m.answered = true
	m.result = pred
}

// Submitting reports whether a prediction round trip is in flight.
func (m FraudFormModel) Submitting() bool {
	return m.submitting
}

// readInput coerces form values into a raw transaction input. Unparseable
// decimals become NaN and travel to the backend as null slots; no further
// validation happens here.
func (m FraudFormModel) readInput() model.TransactionInput {
	in := model.TransactionInput{
		Amount:               parseDecimal(m.fields[fieldAmount].value()),
		Location:             m.fields[fieldLocation].value(),
		MerchantID:           parseWhole(m.fields[fieldMerchantID].value()),
		DeviceID:             parseWhole(m.fields[fieldDeviceID].value()),
		CardType:             m.fields[fieldCardType].value(),
		Currency:             m.fields[fieldCurrency].value(),
		Status:               m.fields[fieldStatus].value(),
		PreviousTxnCount:     parseWhole(m.fields[fieldPrevCount].value()),
		DistanceKm:           parseDecimal(m.fields[fieldDistance].value()),
		TimeSinceLastMin:     parseDecimal(m.fields[fieldTimeSince].value()),
		AuthenticationMethod: m.fields[fieldAuthMethod].value(),
		Velocity:             parseWhole(m.fields[fieldVelocity].value()),
		Category:             m.fields[fieldCategory].value(),
	}

	stamp := m.fields[fieldDate].value() + " " + m.fields[fieldTime].value()
	if ts, err := time.ParseInLocation("2006-01-02 15:04", stamp, time.Local); err == nil {
		in.SetTimestamp(ts)
	}
	return in
}

func parseDecimal(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func parseWhole(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// View renders the form with its submit control and result panel.
func (m FraudFormModel) View() string {
	rows := make([]string, 0, fieldCount+3)
	rows = append(rows, m.theme.Title.Render("Detect Fraudulent Transaction"))

	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(26)

	for i, f := range m.fields {
		label := labelStyle.Render(f.label)

		var value string
		switch f.kind {
		case fieldText:
			value = f.input.View()
		case fieldChoice:
			if i == m.focus {
				value = m.theme.Selected.Render("◀ " + f.value() + " ▶")
			} else {
				value = m.theme.Normal.Render(f.value())
			}
		}

		marker := "  "
		if i == m.focus {
			marker = lipgloss.NewStyle().Foreground(m.theme.Primary).Render("> ")
		}
		rows = append(rows, marker+label+value)
	}

	rows = append(rows, "", m.renderSubmit())

	if panel := m.renderResult(); panel != "" {
		rows = append(rows, "", panel)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m FraudFormModel) renderSubmit() string {
	if m.submitting {
		return m.theme.StatusPending.Render(m.spinner.View() + " Analyzing...")
	}
	button := "[ Detect Fraud ]"
	if m.focus == fieldCount {
		return m.theme.Selected.Render(button)
	}
	return m.theme.Normal.Render(button)
}

func (m FraudFormModel) renderResult() string {
	if !m.answered {
		return ""
	}

	if m.result == nil || m.result.IsFraud == nil {
		return m.theme.StatusError.Render("Error processing request.")
	}

	var verdict string
	box := m.theme.NormalBox
	if m.result.Fraudulent() {
		verdict = m.theme.StatusError.Render("Fraud Detected")
		box = m.theme.FraudBox
	} else {
		verdict = m.theme.StatusSuccess.Render("Normal Transaction")
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold.Render("Analysis Complete"),
		"Prediction: "+verdict,
		fmt.Sprintf("Probability: %.3f", m.result.Probability),
	)
	return box.Render(content)
}

// Resize updates the component size.
func (m *FraudFormModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
