// Package tabular provides the chainable result table that wraps AWS API
// responses. Every transform returns a new Table; the wrapped records are
// never mutated, so tables can be chained freely:
//
//	t.Where("State.Name", "running").Find("web").Sort("Tags.Name").Render(os.Stdout)
package tabular

import (
	"fmt"
	"sort"
	"strings"
)

// Record is a single structured result: a map with string keys and
// heterogeneous values. Tables also accept plain scalars as items.
type Record = map[string]any

// Column describes one display column: a field path (dotted, with the
// Tags.<Name> convention), a header, and an optional lipgloss style key.
type Column struct {
	Path   string
	Header string
	Style  string
}

// Table wraps an ordered list of records plus optional display metadata.
type Table struct {
	items   []any
	columns []Column
	title   string
}

// New creates a table over the given items. Items are kept in order.
func New(items []any) *Table {
	return &Table{items: items}
}

// NewRecords creates a table from a record slice.
func NewRecords(records []Record) *Table {
	items := make([]any, len(records))
	for i, r := range records {
		items[i] = r
	}
	return &Table{items: items}
}

// WithTitle returns a copy of the table with the given display title.
func (t *Table) WithTitle(title string) *Table {
	return &Table{items: t.items, columns: t.columns, title: title}
}

// WithColumns returns a copy of the table with an explicit column projection.
func (t *Table) WithColumns(cols ...Column) *Table {
	return &Table{items: t.items, columns: cols, title: t.title}
}

// Title returns the display title, if any.
func (t *Table) Title() string { return t.title }

// Columns returns the current column projection (nil when inferred).
func (t *Table) Columns() []Column { return t.columns }

// Data returns the raw item slice. Callers must treat records as read-only
// snapshots; the table itself never writes into them.
func (t *Table) Data() []any { return t.items }

// Len returns the number of items.
func (t *Table) Len() int { return len(t.items) }

// At returns the raw item at index i.
func (t *Table) At(i int) (any, error) {
	if i < 0 || i >= len(t.items) {
		return nil, fmt.Errorf("index %d out of range (%d items)", i, len(t.items))
	}
	return t.items[i], nil
}

// Slice returns a new table over items[lo:hi], preserving columns and title.
// Bounds are clamped instead of erroring, matching slice semantics users
// expect in the query mode.
func (t *Table) Slice(lo, hi int) *Table {
	if lo < 0 {
		lo = 0
	}
	if hi > len(t.items) {
		hi = len(t.items)
	}
	if lo > hi {
		lo = hi
	}
	return &Table{items: t.items[lo:hi], columns: t.columns, title: t.title}
}

// Filter returns a new table keeping only items for which pred is true.
func (t *Table) Filter(pred func(item any) bool) *Table {
	kept := make([]any, 0, len(t.items))
	for _, item := range t.items {
		if pred(item) {
			kept = append(kept, item)
		}
	}
	return &Table{items: kept, columns: t.columns, title: t.title}
}

// Where returns a new table keeping items whose field matches pattern.
//
// The pattern's asterisk placement selects the match mode, always
// case-insensitive on the string form of the field value:
//
//	"web"    exact
//	"web*"   prefix
//	"*web"   suffix
//	"*web*"  contains
//
// The field resolves as a literal key, then a dotted path, then the
// Tags.<field> tag-list fallback. Items with no resolvable value are
// dropped. When the resolved value is itself a map or list, matching falls
// back to contains over its stringified members regardless of asterisks.
// Successive Where calls narrow the result set (logical AND).
func (t *Table) Where(field, pattern string) *Table {
	hasPrefixStar := strings.HasPrefix(pattern, "*")
	hasSuffixStar := strings.HasSuffix(pattern, "*")
	want := strings.ToLower(strings.Trim(pattern, "*"))

	kept := make([]any, 0, len(t.items))
	for _, item := range t.items {
		rec, ok := item.(Record)
		if !ok {
			continue
		}
		val := Resolve(rec, field)
		if val == nil {
			val = Resolve(rec, "Tags."+field)
		}
		if val == nil {
			continue
		}

		if members, ok := collectionMembers(val); ok {
			for _, m := range members {
				if strings.Contains(strings.ToLower(stringify(m)), want) {
					kept = append(kept, item)
					break
				}
			}
			continue
		}

		got := strings.ToLower(stringify(val))
		match := false
		switch {
		case hasPrefixStar && hasSuffixStar:
			match = strings.Contains(got, want)
		case hasPrefixStar:
			match = strings.HasSuffix(got, want)
		case hasSuffixStar:
			match = strings.HasPrefix(got, want)
		default:
			match = got == want
		}
		if match {
			kept = append(kept, item)
		}
	}
	return &Table{items: kept, columns: t.columns, title: t.title}
}

// Sort returns a new table sorted ascending by the string form of the
// resolved field value; unresolvable values sort as the empty string.
//
// The comparison is lexicographic on strings, never numeric: "10" sorts
// before "2". This mirrors the observed behavior of the original shell and
// is kept as the contract rather than silently fixed.
func (t *Table) Sort(key string) *Table {
	return t.sortBy(key, false)
}

// SortDesc is Sort with the order reversed.
func (t *Table) SortDesc(key string) *Table {
	return t.sortBy(key, true)
}

func (t *Table) sortBy(key string, reverse bool) *Table {
	sorted := make([]any, len(t.items))
	copy(sorted, t.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := stringifyOrEmpty(Resolve(sorted[i], key))
		b := stringifyOrEmpty(Resolve(sorted[j], key))
		if reverse {
			return a > b
		}
		return a < b
	})
	return &Table{items: sorted, columns: t.columns, title: t.title}
}

// Find returns a new table keeping items where keyword appears, as a
// case-insensitive substring, in any flattened path or value of the item.
// The result is titled "Search: '<keyword>'".
func (t *Table) Find(keyword string) *Table {
	kw := strings.ToLower(keyword)
	kept := make([]any, 0, len(t.items))
	for _, item := range t.items {
		switch item.(type) {
		case map[string]any, []any:
			matched := false
			for _, pv := range Flatten(item) {
				if strings.Contains(strings.ToLower(pv.Path), kw) ||
					strings.Contains(strings.ToLower(pv.Value), kw) {
					matched = true
					break
				}
			}
			if matched {
				kept = append(kept, item)
			}
		default:
			if strings.Contains(strings.ToLower(stringify(item)), kw) {
				kept = append(kept, item)
			}
		}
	}
	return &Table{
		items:   kept,
		columns: t.columns,
		title:   fmt.Sprintf("Search: '%s'", keyword),
	}
}

// Select returns a new table displaying only the given columns. Each spec is
// "path" or "path:Header". Only the projection changes; Data still carries
// every field of every record.
func (t *Table) Select(specs ...string) *Table {
	cols := make([]Column, 0, len(specs))
	for _, spec := range specs {
		if path, header, ok := strings.Cut(spec, ":"); ok {
			cols = append(cols, Column{Path: strings.TrimSpace(path), Header: strings.TrimSpace(header)})
		} else {
			trimmed := strings.TrimSpace(spec)
			cols = append(cols, Column{Path: trimmed, Header: trimmed})
		}
	}
	return &Table{items: t.items, columns: cols, title: t.title}
}

// collectionMembers returns the member values of a map or list value.
func collectionMembers(v any) ([]any, bool) {
	switch c := v.(type) {
	case map[string]any:
		members := make([]any, 0, len(c))
		for _, m := range c {
			members = append(members, m)
		}
		return members, true
	case []any:
		return c, true
	default:
		return nil, false
	}
}
