package tabular

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Display truncation caps. Data() and JSON() always return full values;
// only rendered cells are clipped.
const (
	maxCellWidth       = 80
	maxNestedCellWidth = 60
	maxInferredColumns = 10
)

// statusTiers maps known status/state vocabulary to a semantic tier.
var statusTiers = map[string]string{
	"running": "positive", "available": "positive", "active": "positive",
	"enabled": "positive", "in-use": "positive", "deployed": "positive",
	"complete": "positive", "create_complete": "positive",
	"update_complete": "positive", "ok": "positive", "healthy": "positive",
	"true": "positive",

	"pending": "warning", "modifying": "warning", "updating": "warning",
	"in_progress": "warning", "create_in_progress": "warning",
	"update_in_progress": "warning", "shutting-down": "warning",
	"stopping": "warning", "creating": "warning", "deleting": "warning",
	"insufficient_data": "warning",

	"stopped": "negative", "failed": "negative", "error": "negative",
	"alarm": "negative", "delete_failed": "negative",
	"rollback_complete": "negative", "false": "negative",

	"terminated": "neutral", "deleted": "neutral", "disabled": "neutral",
	"inactive": "neutral",
}

var (
	positiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	negativeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle      = lipgloss.NewStyle().Faint(true)
	identifierStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	arnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Faint(true)
	addressStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	headerStyle     = lipgloss.NewStyle().Bold(true)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

var (
	ipPattern   = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)
	idPattern   = regexp.MustCompile(`^(i|vpc|subnet|sg|vol|snap|ami|rtb|igw|nat|eni|acl)-[0-9a-f]+$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// Render writes the table to w. Empty tables print a "No results" line and
// never error. Explicit columns drive both order and cell lookup; otherwise
// columns are inferred from the first record's keys (sorted, capped,
// ResponseMetadata dropped). Scalar item lists render as one Value column.
func (t *Table) Render(w io.Writer) {
	if len(t.items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No results"))
		return
	}

	cols := t.columns
	if cols == nil {
		cols = t.inferColumns()
	}

	if t.title != "" {
		fmt.Fprintln(w, titleStyle.Render(t.title))
	}

	if cols == nil {
		// Plain scalars: a single unstyled value column.
		fmt.Fprintln(w, headerStyle.Render("Value"))
		for _, item := range t.items {
			fmt.Fprintln(w, identifierStyle.Render(truncate(stringify(item), maxCellWidth)))
		}
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d item(s)", len(t.items))))
		return
	}

	rows := make([][]string, len(t.items))
	widths := make([]int, len(cols))
	for i, col := range cols {
		widths[i] = ansi.StringWidth(col.Header)
	}
	for r, item := range t.items {
		cells := make([]string, len(cols))
		for c, col := range cols {
			cells[c] = styleCell(Resolve(item, col.Path))
			if w := ansi.StringWidth(cells[c]); w > widths[c] {
				widths[c] = w
			}
		}
		rows[r] = cells
	}

	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = padRight(headerStyle.Render(col.Header), widths[i])
	}
	fmt.Fprintln(w, strings.Join(headers, "  "))

	for _, cells := range rows {
		for i := range cells {
			cells[i] = padRight(cells[i], widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d item(s)", len(t.items))))
}

// Text writes the table as headerless tab-separated values, one record
// per line, with no styling or truncation. Suited to piping.
func (t *Table) Text(w io.Writer) {
	cols := t.columns
	if cols == nil {
		cols = t.inferColumns()
	}
	for _, item := range t.items {
		if cols == nil {
			fmt.Fprintln(w, stringify(item))
			continue
		}
		cells := make([]string, len(cols))
		for c, col := range cols {
			cells[c] = stringifyOrEmpty(Resolve(item, col.Path))
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
}

// inferColumns derives columns from the first record. Returns nil when the
// first item is not a record (scalar lists).
func (t *Table) inferColumns() []Column {
	rec, ok := t.items[0].(Record)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(rec))
	for k := range rec {
		if k == "ResponseMetadata" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > maxInferredColumns {
		keys = keys[:maxInferredColumns]
	}
	cols := make([]Column, len(keys))
	for i, k := range keys {
		cols[i] = Column{Path: k, Header: k}
	}
	return cols
}

// styleCell formats one cell for display: truncation first, then the
// highest-priority style that applies.
func styleCell(v any) string {
	switch v.(type) {
	case nil:
		return ""
	case map[string]any, []any:
		return mutedStyle.Render(truncate(compact(v), maxNestedCellWidth))
	}

	s := truncate(stringify(v), maxCellWidth)

	switch statusTiers[strings.ToLower(s)] {
	case "positive":
		return positiveStyle.Render(s)
	case "warning":
		return warningStyle.Render(s)
	case "negative":
		return negativeStyle.Render(s)
	case "neutral":
		return mutedStyle.Render(s)
	}
	switch {
	case idPattern.MatchString(s):
		return identifierStyle.Render(s)
	case strings.HasPrefix(s, "arn:"):
		return arnStyle.Render(s)
	case ipPattern.MatchString(s):
		return addressStyle.Render(s)
	case datePattern.MatchString(s):
		return mutedStyle.Render(s)
	}
	return s
}

func compact(v any) string {
	if raw, err := json.Marshal(normalize(v)); err == nil {
		return string(raw)
	}
	return stringify(v)
}

// truncate clips by display width, never mid-rune.
func truncate(s string, limit int) string {
	if ansi.StringWidth(s) <= limit {
		return s
	}
	return ansi.Truncate(s, limit, "") + "..."
}

func padRight(s string, width int) string {
	if gap := width - ansi.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
