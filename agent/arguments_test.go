package agent

import (
	"encoding/json"
	"testing"
)

func TestCoerceArguments(t *testing.T) {
	t.Run("integers stay int", func(t *testing.T) {
		params := CoerceArguments(json.RawMessage(`{"count": 3}`))
		v, ok := params["count"].(int)
		if !ok {
			t.Fatalf("expected int, got %T", params["count"])
		}
		if v != 3 {
			t.Errorf("expected 3, got %d", v)
		}
	})

	t.Run("fractions become float64", func(t *testing.T) {
		params := CoerceArguments(json.RawMessage(`{"ratio": 3.5}`))
		v, ok := params["ratio"].(float64)
		if !ok {
			t.Fatalf("expected float64, got %T", params["ratio"])
		}
		if v != 3.5 {
			t.Errorf("expected 3.5, got %v", v)
		}
	})

	t.Run("trailing zero keeps float", func(t *testing.T) {
		// 3.0 has a decimal point, so it must not collapse to int.
		params := CoerceArguments(json.RawMessage(`{"x": 3.0}`))
		if _, ok := params["x"].(float64); !ok {
			t.Errorf("expected float64 for 3.0, got %T", params["x"])
		}
	})

	t.Run("exponents become float64", func(t *testing.T) {
		params := CoerceArguments(json.RawMessage(`{"big": 1e3}`))
		v, ok := params["big"].(float64)
		if !ok {
			t.Fatalf("expected float64, got %T", params["big"])
		}
		if v != 1000.0 {
			t.Errorf("expected 1000.0, got %v", v)
		}
	})

	t.Run("strings bools and null pass through", func(t *testing.T) {
		params := CoerceArguments(json.RawMessage(`{"s": "hi", "b": true, "n": null}`))
		if params["s"] != "hi" {
			t.Errorf("expected string hi, got %v", params["s"])
		}
		if params["b"] != true {
			t.Errorf("expected true, got %v", params["b"])
		}
		if v, present := params["n"]; !present || v != nil {
			t.Errorf("expected nil present, got %v", v)
		}
	})

	t.Run("nested structures coerce recursively", func(t *testing.T) {
		params := CoerceArguments(json.RawMessage(`{"outer": {"n": 2, "list": [1, 2.5, "s", true]}}`))

		outer, ok := params["outer"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected nested map, got %T", params["outer"])
		}
		if v, ok := outer["n"].(int); !ok || v != 2 {
			t.Errorf("expected nested int 2, got %v (%T)", outer["n"], outer["n"])
		}

		list, ok := outer["list"].([]interface{})
		if !ok {
			t.Fatalf("expected nested slice, got %T", outer["list"])
		}
		if v, ok := list[0].(int); !ok || v != 1 {
			t.Errorf("expected list[0] int 1, got %v (%T)", list[0], list[0])
		}
		if v, ok := list[1].(float64); !ok || v != 2.5 {
			t.Errorf("expected list[1] float64 2.5, got %v (%T)", list[1], list[1])
		}
		if list[2] != "s" || list[3] != true {
			t.Errorf("expected [.. s true], got %v", list)
		}
	})

	t.Run("non-object payloads yield empty map", func(t *testing.T) {
		for _, raw := range []string{`"hello"`, `[1, 2]`, `42`, `null`, `{bad json`, ``} {
			params := CoerceArguments(json.RawMessage(raw))
			if params == nil {
				t.Fatalf("expected empty map for %q, got nil", raw)
			}
			if len(params) != 0 {
				t.Errorf("expected empty map for %q, got %v", raw, params)
			}
		}
	})
}

func TestGetStringArg(t *testing.T) {
	params := map[string]interface{}{"name": "alice", "count": 3}

	if v, ok := GetStringArg(params, "name"); !ok || v != "alice" {
		t.Errorf("expected (alice, true), got (%q, %v)", v, ok)
	}
	if _, ok := GetStringArg(params, "count"); ok {
		t.Error("expected false for non-string value")
	}
	if _, ok := GetStringArg(params, "missing"); ok {
		t.Error("expected false for missing key")
	}
}

func TestGetIntArg(t *testing.T) {
	params := map[string]interface{}{
		"i": 3,
		"f": 4.0,
		"n": json.Number("5"),
		"x": json.Number("5.5"),
		"s": "nope",
	}

	if v, ok := GetIntArg(params, "i"); !ok || v != 3 {
		t.Errorf("expected (3, true), got (%d, %v)", v, ok)
	}
	if v, ok := GetIntArg(params, "f"); !ok || v != 4 {
		t.Errorf("expected (4, true), got (%d, %v)", v, ok)
	}
	if v, ok := GetIntArg(params, "n"); !ok || v != 5 {
		t.Errorf("expected (5, true), got (%d, %v)", v, ok)
	}
	if _, ok := GetIntArg(params, "x"); ok {
		t.Error("expected false for fractional json.Number")
	}
	if _, ok := GetIntArg(params, "s"); ok {
		t.Error("expected false for string value")
	}
	if _, ok := GetIntArg(params, "missing"); ok {
		t.Error("expected false for missing key")
	}
}

func TestGetBoolArg(t *testing.T) {
	params := map[string]interface{}{"yes": true, "s": "true"}

	if v, ok := GetBoolArg(params, "yes"); !ok || !v {
		t.Errorf("expected (true, true), got (%v, %v)", v, ok)
	}
	if _, ok := GetBoolArg(params, "s"); ok {
		t.Error("expected false for string value")
	}
	if _, ok := GetBoolArg(params, "missing"); ok {
		t.Error("expected false for missing key")
	}
}
