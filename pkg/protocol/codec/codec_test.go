package codec

import (
	"testing"
)

func TestJSONCodec(t *testing.T) {
	c := JSON()
	in := map[string]any{"a": 1, "b": "x"}
	b, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := c.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["a"].(float64) != 1 || out["b"].(string) != "x" {
		t.Fatalf("roundtrip mismatch: %#v", out)
	}
}

func TestCBORCodec(t *testing.T) {
	c, err := CBOR()
	if err != nil {
		t.Fatalf("new cbor: %v", err)
	}
	in := map[string]any{"n": 42}
	b, err := c.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]any
	if err := c.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// decoder may choose the numeric type
	switch n := out["n"].(type) {
	case uint64:
		if n != 42 {
			t.Fatalf("roundtrip mismatch: %#v", out)
		}
	case int64:
		if n != 42 {
			t.Fatalf("roundtrip mismatch: %#v", out)
		}
	case float64:
		if n != 42 {
			t.Fatalf("roundtrip mismatch: %#v", out)
		}
	default:
		t.Fatalf("unexpected numeric type %T: %#v", out["n"], out)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Get("application/json") == nil {
		t.Fatalf("json codec not preloaded")
	}
	if r.Get("application/cbor") != nil {
		t.Fatalf("cbor codec must be registered explicitly")
	}
	c, err := CBOR()
	if err != nil {
		t.Fatalf("new cbor: %v", err)
	}
	r.Register(c)
	if r.Get("application/cbor") == nil {
		t.Fatalf("cbor codec not registered")
	}
}
