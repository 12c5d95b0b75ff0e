// internal/redact/mask_test.go
package redact

import (
	"reflect"
	"testing"
)

func TestTree_Structure(t *testing.T) {
	in := map[string]any{
		"default_provider": "openai",
		"max_tokens":       int64(4096),
		"api_key":          "sk-abc123",
		"providers": map[string]any{
			"openai": map[string]any{
				"endpoint": "https://api.openai.com/v1",
				"api_key":  "sk-deadbeef",
				"models":   []any{"gpt-4o", "gpt-4o-mini"},
			},
		},
		"headers": map[string]any{
			"x-api-key": "secretvalue",
		},
	}

	out := Tree(in)

	// Key sets and nesting preserved at every level.
	assertSameShape(t, in, out)

	if out["default_provider"] != "openai" {
		t.Errorf("clean value changed: %v", out["default_provider"])
	}
	if out["max_tokens"] != int64(4096) {
		t.Errorf("numeric value changed: %v", out["max_tokens"])
	}
	if out["api_key"] != "<your-api-key>" {
		t.Errorf("api_key = %v", out["api_key"])
	}

	providers := out["providers"].(map[string]any)
	openai := providers["openai"].(map[string]any)
	if openai["api_key"] != "<your-api-key>" {
		t.Errorf("nested api_key = %v", openai["api_key"])
	}
	if openai["endpoint"] != "https://api.openai.com/v1" {
		t.Errorf("nested clean value changed: %v", openai["endpoint"])
	}
	models := openai["models"].([]any)
	if !reflect.DeepEqual(models, []any{"gpt-4o", "gpt-4o-mini"}) {
		t.Errorf("clean list changed: %v", models)
	}

	headers := out["headers"].(map[string]any)
	if headers["x-api-key"] != "<your-api-key>" {
		t.Errorf("header value = %v", headers["x-api-key"])
	}
}

func TestTree_ListsOfScalarsUseParentKey(t *testing.T) {
	in := map[string]any{
		"backup_keys": []any{"sk-one", "sk-two", ""},
		"regions":     []any{"us-east-1", "eu-west-1"},
	}
	out := Tree(in)

	keys := out["backup_keys"].([]any)
	if len(keys) != 3 {
		t.Fatalf("list length changed: %d", len(keys))
	}
	if keys[0] != "<your-api-key>" || keys[1] != "<your-api-key>" {
		t.Errorf("list elements not masked: %v", keys)
	}
	if keys[2] != "" {
		t.Errorf("empty list element changed: %v", keys[2])
	}

	regions := out["regions"].([]any)
	if !reflect.DeepEqual(regions, []any{"us-east-1", "eu-west-1"}) {
		t.Errorf("clean list changed: %v", regions)
	}
}

func TestTree_ListsOfTables(t *testing.T) {
	in := map[string]any{
		"servers": []map[string]any{
			{"name": "alpha", "auth_token": "gho_abc"},
			{"name": "beta", "auth_token": ""},
		},
	}
	out := Tree(in)

	servers := out["servers"].([]map[string]any)
	if len(servers) != 2 {
		t.Fatalf("table array length changed: %d", len(servers))
	}
	if servers[0]["auth_token"] != "<your-github-token>" {
		t.Errorf("first table token = %v", servers[0]["auth_token"])
	}
	if servers[0]["name"] != "alpha" {
		t.Errorf("first table name changed: %v", servers[0]["name"])
	}
	if servers[1]["auth_token"] != "" {
		t.Errorf("empty token changed: %v", servers[1]["auth_token"])
	}
}

func TestTree_MixedListRecursesIntoMaps(t *testing.T) {
	in := map[string]any{
		"entries": []any{
			map[string]any{"password": "hunter2"},
			"sk-scalar",
		},
	}
	out := Tree(in)

	entries := out["entries"].([]any)
	inner := entries[0].(map[string]any)
	if inner["password"] != "<your-api-key>" {
		t.Errorf("map inside list not masked: %v", inner["password"])
	}
	// Scalar classified by the list's key, which is not sensitive.
	if entries[1] != "sk-scalar" {
		t.Errorf("scalar under clean list key changed: %v", entries[1])
	}
}

func TestTree_Idempotent(t *testing.T) {
	in := map[string]any{
		"api_key": "sk-abc",
		"token":   "gho_abc",
		"providers": map[string]any{
			"github": map[string]any{"auth_token": "ghu_xyz"},
		},
	}
	once := Tree(in)
	twice := Tree(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("masking is not idempotent:\n%v\nvs\n%v", once, twice)
	}
}

func TestTree_DoesNotMutateInput(t *testing.T) {
	in := map[string]any{"api_key": "sk-abc"}
	Tree(in)
	if in["api_key"] != "sk-abc" {
		t.Errorf("input tree mutated: %v", in["api_key"])
	}
}

// assertSameShape checks key sets, nesting depth and list lengths match.
func assertSameShape(t *testing.T, a, b map[string]any) {
	t.Helper()
	if len(a) != len(b) {
		t.Fatalf("key count differs: %d vs %d", len(a), len(b))
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			t.Fatalf("key %q missing from masked tree", k)
		}
		switch at := av.(type) {
		case map[string]any:
			bt, ok := bv.(map[string]any)
			if !ok {
				t.Fatalf("key %q changed type: %T vs %T", k, av, bv)
			}
			assertSameShape(t, at, bt)
		case []any:
			bt, ok := bv.([]any)
			if !ok {
				t.Fatalf("key %q changed type: %T vs %T", k, av, bv)
			}
			if len(at) != len(bt) {
				t.Fatalf("list %q length differs: %d vs %d", k, len(at), len(bt))
			}
		}
	}
}
