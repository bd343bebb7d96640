package model

// Metadata accessors tolerate missing keys and wrong-typed values: scraped
// metadata is untyped and provider-supplied metadata may be arbitrary JSON.

// MetaString returns meta[key] as a string, or "" when absent or not a string.
func MetaString(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if s, ok := meta[key].(string); ok {
		return s
	}
	return ""
}

// MetaStrings returns meta[key] as a string slice. Both []string and []any
// (the shape produced by json.Unmarshal) are accepted; non-string elements
// are skipped.
func MetaStrings(meta map[string]any, key string) []string {
	if meta == nil {
		return nil
	}
	switch v := meta[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// MetaHasMap reports whether meta[key] is a non-empty mapping.
func MetaHasMap(meta map[string]any, key string) bool {
	if meta == nil {
		return false
	}
	switch v := meta[key].(type) {
	case map[string]any:
		return len(v) > 0
	case map[string]string:
		return len(v) > 0
	}
	return false
}
