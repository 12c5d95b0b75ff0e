// internal/redact/mask.go
package redact

// Tree returns a masked copy of a parsed configuration tree. Structure is
// preserved exactly: key sets, nesting, list lengths and element order all
// survive; only sensitive leaf values are replaced. List elements are
// classified by the list's own key.
func Tree(data map[string]any) map[string]any {
	masked := make(map[string]any, len(data))
	for key, value := range data {
		masked[key] = maskValue(key, value)
	}
	return masked
}

func maskValue(key string, value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Tree(v)
	case []map[string]any:
		// BurntSushi decodes [[table]] arrays into this shape.
		list := make([]map[string]any, len(v))
		for i, item := range v {
			list[i] = Tree(item)
		}
		return list
	case []any:
		list := make([]any, len(v))
		for i, item := range v {
			if m, ok := item.(map[string]any); ok {
				list[i] = Tree(m)
			} else {
				list[i] = Value(key, item)
			}
		}
		return list
	default:
		return Value(key, value)
	}
}
