package tabular

import "fmt"

// PathValue is one flattened leaf of a nested structure: the dotted/indexed
// path to it and its stringified value.
type PathValue struct {
	Path  string
	Value string
}

// Flatten walks a nested map/list structure and returns every leaf as a
// (path, value) pair. Object keys become dotted segments, list indices
// bracketed ones: SecurityGroups[0].GroupId.
func Flatten(v any) []PathValue {
	return flattenInto(nil, v, "")
}

func flattenInto(acc []PathValue, v any, prefix string) []PathValue {
	switch val := v.(type) {
	case map[string]any:
		for key, child := range val {
			path := key
			if prefix != "" {
				path = prefix + "." + key
			}
			acc = flattenInto(acc, child, path)
		}
	case []any:
		for i, child := range val {
			acc = flattenInto(acc, child, fmt.Sprintf("%s[%d]", prefix, i))
		}
	default:
		acc = append(acc, PathValue{Path: prefix, Value: stringify(v)})
	}
	return acc
}
