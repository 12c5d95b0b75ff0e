// internal/tomlenc/writer.go
//
// A deliberately small TOML writer. The stock encoders cannot attach the
// per-key documentation comments that are the whole point of the emitted
// samples, so this package renders the masked tree itself. Output is
// documentation-grade: no round-trip guarantee beyond valid TOML syntax.
package tomlenc

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Encode renders a configuration tree as annotated TOML. Scalar keys of a
// table come before its sub-tables; sub-tables are written with a dotted
// [parent.child] header. Keys are sorted for deterministic output.
func Encode(w io.Writer, data map[string]any) error {
	var sb strings.Builder
	writeTable(&sb, data, "")
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("writing toml output: %w", err)
	}
	return nil
}

func writeTable(sb *strings.Builder, data map[string]any, parent string) {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Scalar key/value pairs first.
	for _, key := range keys {
		value := data[key]
		if isTable(value) {
			continue
		}

		comment := CommentFor(key, value, parent)
		if comment != "" {
			sb.WriteString(comment)
			sb.WriteString("\n")
		}

		writeScalar(sb, key, value)

		if comment != "" {
			sb.WriteString("\n")
		}
	}

	// Then sub-tables.
	for _, key := range keys {
		value := data[key]
		if !isTable(value) {
			continue
		}

		if comment := CommentFor(key, value, parent); comment != "" {
			sb.WriteString(comment)
			sb.WriteString("\n")
		}

		path := key
		if parent != "" {
			path = parent + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			fmt.Fprintf(sb, "\n[%s]\n", path)
			writeTable(sb, v, key)
		case []map[string]any:
			for _, elem := range v {
				fmt.Fprintf(sb, "\n[[%s]]\n", path)
				writeTable(sb, elem, key)
			}
		case []any:
			for _, elem := range v {
				if m, ok := elem.(map[string]any); ok {
					fmt.Fprintf(sb, "\n[[%s]]\n", path)
					writeTable(sb, m, key)
				}
			}
		}
	}
}

func writeScalar(sb *strings.Builder, key string, value any) {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, "\n") {
			fmt.Fprintf(sb, "%s = \"\"\"\n%s\n\"\"\"\n", key, v)
		} else {
			fmt.Fprintf(sb, "%s = \"%s\"\n", key, escapeQuotes(v))
		}
	case []any:
		fmt.Fprintf(sb, "%s = [%s]\n", key, formatList(v))
	default:
		// Booleans render lowercase, numbers bare.
		fmt.Fprintf(sb, "%s = %v\n", key, v)
	}
}

func formatList(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok {
			parts[i] = `"` + escapeQuotes(s) + `"`
		} else {
			parts[i] = fmt.Sprintf("%v", item)
		}
	}
	return strings.Join(parts, ", ")
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// isTable reports whether a value is rendered as a table or table array
// rather than an inline scalar.
func isTable(value any) bool {
	switch v := value.(type) {
	case map[string]any:
		return true
	case []map[string]any:
		return true
	case []any:
		for _, item := range v {
			if _, ok := item.(map[string]any); ok {
				return true
			}
		}
		return false
	default:
		return false
	}
}
