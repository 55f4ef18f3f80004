package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TableData is one fetched snapshot of the backend dataset. Each fetch
// replaces the previous snapshot wholesale.
type TableData struct {
	Message       string
	Columns       []string
	Rows          []map[string]any
	TotalRows     int
	DisplayedRows int
	envelope      bool
}

// tableEnvelope is the metadata-wrapped response shape.
type tableEnvelope struct {
	TotalRows     *int             `json:"total_rows"`
	DisplayedRows *int             `json:"displayed_rows"`
	Message       string           `json:"message"`
	Columns       []string         `json:"columns"`
	Data          []map[string]any `json:"data"`
}

// ParseTable interprets a /csv_data response body. The backend may reply
// with either a bare row array or an envelope carrying explicit columns and
// row counts. Anything else is an error.
func ParseTable(raw []byte) (*TableData, error) {
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var rows []map[string]any
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("failed to parse row array: %w", err)
		}
		return &TableData{
			Rows:          rows,
			Columns:       deriveColumns(rows),
			TotalRows:     len(rows),
			DisplayedRows: len(rows),
		}, nil
	}

	var env tableEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to parse envelope: %w", err)
	}
	if env.Data == nil {
		return nil, fmt.Errorf("response carries no tabular data")
	}

	t := &TableData{
		Rows:          env.Data,
		Columns:       env.Columns,
		Message:       env.Message,
		TotalRows:     len(env.Data),
		DisplayedRows: len(env.Data),
		envelope:      true,
	}
	if len(t.Columns) == 0 {
		t.Columns = deriveColumns(env.Data)
	}
	if env.TotalRows != nil {
		t.TotalRows = *env.TotalRows
	}
	if env.DisplayedRows != nil {
		t.DisplayedRows = *env.DisplayedRows
	}
	return t, nil
}

// Summary describes the snapshot for the status banner.
func (t *TableData) Summary() string {
	if !t.envelope {
		return fmt.Sprintf("Showing %d rows from CSV source.", len(t.Rows))
	}
	s := fmt.Sprintf("Showing %d of %d rows fetched from backend", t.DisplayedRows, t.TotalRows)
	if t.Message != "" {
		s += " • " + t.Message
	}
	return s
}

// deriveColumns infers column names from the first row. JSON objects carry
// no key order, so columns are sorted for a stable header.
func deriveColumns(rows []map[string]any) []string {
	if len(rows) == 0 {
		return nil
	}
	cols := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// FormatCell renders a single table value: missing values become an em-dash,
// whole numbers drop their fraction, other numbers keep two decimals.
func FormatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return "—"
	case string:
		if val == "" {
			return "—"
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', 2, 64)
	case json.Number:
		if n, err := val.Int64(); err == nil {
			return strconv.FormatInt(n, 10)
		}
		if f, err := val.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}
