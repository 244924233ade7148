package meta

import (
	"encoding/json"
	"testing"
)

func keys(f Fields) []string {
	out := make([]string, 0, len(f))
	for _, fl := range f {
		out = append(out, fl.Key)
	}
	return out
}

func TestSetGetClone(t *testing.T) {
	var fields Fields
	fields.Set("a", json.RawMessage(`1`))
	if value, ok := fields.Get("a"); !ok || string(value) != "1" {
		t.Fatalf("get failed")
	}
	if err := fields.SetValue("b", "two"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	fields.Set("a", json.RawMessage(`3`))
	if got := keys(fields); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("set must replace in place: %v", got)
	}
	cloned := fields.Clone()
	cloned.Set("a", json.RawMessage(`9`))
	if value, _ := fields.Get("a"); string(value) != "3" {
		t.Fatalf("clone shares storage: %s", value)
	}
	if fields.Has("c") {
		t.Fatalf("unexpected key c")
	}
}

func TestUnmarshalKeepsOrderAndDuplicates(t *testing.T) {
	var fields Fields
	if err := json.Unmarshal([]byte(`{"z":1,"a":{"x": [1, 2]},"m":"s","z":2}`), &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := keys(fields)
	if len(keys) != 3 || keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Fatalf("unexpected order: %v", keys)
	}
	if value, _ := fields.Get("z"); string(value) != "2" {
		t.Fatalf("duplicate key must take last value, got %s", value)
	}
	out, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"z":2,"a":{"x":[1,2]},"m":"s"}` {
		t.Fatalf("unexpected json: %s", out)
	}
}

func TestUnmarshalRejectsNonObject(t *testing.T) {
	for _, in := range []string{`null`, `[1]`, `"x"`, `12`} {
		var fields Fields
		if err := json.Unmarshal([]byte(in), &fields); err == nil {
			t.Fatalf("expected error for %s", in)
		}
	}
}

func TestDecode(t *testing.T) {
	var fields Fields
	_ = json.Unmarshal([]byte(`{"n":"text","k":5}`), &fields)
	var s string
	if ok, err := fields.Decode("n", &s); !ok || err != nil || s != "text" {
		t.Fatalf("decode n: ok=%v err=%v s=%q", ok, err, s)
	}
	if ok, err := fields.Decode("k", &s); !ok || err == nil {
		t.Fatalf("expected type error for k")
	}
	if ok, _ := fields.Decode("missing", &s); ok {
		t.Fatalf("missing key reported present")
	}
	if out, _ := json.Marshal(Fields(nil)); string(out) != "{}" {
		t.Fatalf("empty fields must encode as {}: %s", out)
	}
}
