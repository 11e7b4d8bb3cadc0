// Package repository is the query catalog: every graph traversal the API
// performs lives here as a parameterized Cypher statement plus the projection
// of its raw records into typed domain entities.
package repository

import (
	"fmt"

	"github.com/VladyslavHaiko/moviegraph/internal/graph"
)

// Repository encapsulates graph persistence operations.
type Repository struct {
	client graph.Client
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client}
}

// --- raw value coercion helpers ---

func toString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case []byte:
		return string(v)
	default:
		return ""
	}
}

func toInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
		return 0
	default:
		return 0
	}
}

func toInt64(val any) int64 {
	switch v := val.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func toFloat64(val any) float64 {
	switch v := val.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}

func toStrings(val any) []string {
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := toString(item); s != "" {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}

// asProps coerces a normalized node value into its property map.
func asProps(val any) (map[string]any, bool) {
	props, ok := val.(map[string]any)
	return props, ok
}

// asPropsSlice coerces a collect(...) value into a slice of property maps,
// skipping anything that is not a map.
func asPropsSlice(val any) []map[string]any {
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if props, ok := item.(map[string]any); ok {
			out = append(out, props)
		}
	}
	return out
}
