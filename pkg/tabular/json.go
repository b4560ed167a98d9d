package tabular

import (
	"encoding/json"
	"time"
)

// JSON serializes the raw items as 2-space-indented JSON. Times serialize
// as RFC 3339 strings and any value the encoder rejects falls closed to its
// string form, so this never fails: malformed values degrade, they don't
// abort a render.
func (t *Table) JSON() string {
	normalized := make([]any, len(t.items))
	for i, item := range t.items {
		normalized[i] = normalize(item)
	}
	out, err := json.MarshalIndent(normalized, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(out)
}

// normalize rewrites values the JSON encoder can't represent into ones it
// can, recursing through maps and lists.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = normalize(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = normalize(child)
		}
		return out
	case time.Time:
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		return val.Format(time.RFC3339)
	case nil, bool, string, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return val
	default:
		if _, err := json.Marshal(val); err != nil {
			return stringify(val)
		}
		return val
	}
}

// FromAny converts an arbitrary API response value (typically an SDK struct
// or slice of structs) into table records via a JSON round trip. This is the
// one generic auto-convert entry point: handlers hand it whatever the
// provider returned and get map records the table operations understand.
func FromAny(v any) ([]Record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var asList []Record
	if err := json.Unmarshal(raw, &asList); err == nil {
		return asList, nil
	}

	var asOne Record
	if err := json.Unmarshal(raw, &asOne); err != nil {
		return nil, err
	}
	return []Record{asOne}, nil
}

// FromValues builds a single-column item list out of plain scalars
// (bucket names, queue URLs, ARNs).
func FromValues[T any](values []T) []any {
	items := make([]any, len(values))
	for i, v := range values {
		items[i] = v
	}
	return items
}
