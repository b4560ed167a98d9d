package tabular

import (
	"fmt"
	"strings"
	"time"
)

// Resolve looks up a field path inside an item.
//
//	"InstanceId"  -> rec["InstanceId"]
//	"State.Name"  -> rec["State"]["Name"]
//	"Tags.Name"   -> the Value of the {Key: "Name", Value: ...} entry in
//	                 rec["Tags"], "" when the Tags list exists but has no
//	                 matching Key
//
// Returns nil when the path cannot be resolved. Scalar items resolve to
// themselves regardless of path.
func Resolve(item any, path string) any {
	rec, ok := item.(Record)
	if !ok {
		return item
	}

	if name, found := strings.CutPrefix(path, "Tags."); found {
		return resolveTag(rec, name)
	}

	var current any = rec
	for _, part := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = m[part]
	}
	return current
}

func resolveTag(rec Record, name string) any {
	tags, _ := rec["Tags"].([]any)
	for _, raw := range tags {
		tag, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if key, _ := tag["Key"].(string); key == name {
			if val, ok := tag["Value"]; ok {
				return val
			}
			return ""
		}
	}
	return nil
}

// stringify renders a value the way cells, filters and sorts see it.
// Times become RFC 3339 so date columns compare and display consistently.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return ""
		}
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func stringifyOrEmpty(v any) string {
	if v == nil {
		return ""
	}
	return stringify(v)
}
