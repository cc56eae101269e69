package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// camelizeJSON rewrites every snake_case object key in the raw JSON
// document to camelCase, recursively through nested objects and arrays.
// Values, array order, already-camelCase keys, and null pass through
// unchanged. Number literals are preserved verbatim via json.Number.
func camelizeJSON(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return data, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}

	out, err := json.Marshal(camelizeValue(v))
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode response body: %w", err)
	}
	return out, nil
}

func camelizeValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[camelizeKey(k)] = camelizeValue(inner)
		}
		return out
	case []any:
		for i := range val {
			val[i] = camelizeValue(val[i])
		}
		return val
	default:
		return v
	}
}

// camelizeKey collapses each "_x" pair (lowercase x) into an uppercase X.
// An underscore not followed by a lowercase letter is kept as-is, which
// matches the wire contract rather than a general-purpose case converter.
func camelizeKey(key string) string {
	if !strings.ContainsRune(key, '_') {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		if key[i] == '_' && i+1 < len(key) && key[i+1] >= 'a' && key[i+1] <= 'z' {
			b.WriteByte(key[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(key[i])
	}
	return b.String()
}
