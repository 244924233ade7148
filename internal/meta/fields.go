// Package meta holds the opaque part of stored records: JSON object members
// the service does not interpret but must carry through every rewrite.
package meta

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Field is a single JSON object member with its value kept verbatim.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Fields is an ordered JSON object. Decoding keeps source key order; a repeated
// key keeps its first position and takes the last value.
type Fields []Field

var errNotObject = errors.New("expected JSON object")

func (f Fields) index(k string) int {
	for i := range f {
		if f[i].Key == k {
			return i
		}
	}
	return -1
}

// Get returns the raw value stored under k.
func (f Fields) Get(k string) (json.RawMessage, bool) {
	if i := f.index(k); i >= 0 {
		return f[i].Value, true
	}
	return nil, false
}

// Has reports whether k is present.
func (f Fields) Has(k string) bool { return f.index(k) >= 0 }

// Set replaces the value of k in place, or appends k when absent.
func (f *Fields) Set(k string, v json.RawMessage) {
	if i := f.index(k); i >= 0 {
		(*f)[i].Value = v
		return
	}
	*f = append(*f, Field{Key: k, Value: v})
}

// SetValue marshals v and stores it under k.
func (f *Fields) SetValue(k string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("meta: encode %q: %w", k, err)
	}
	f.Set(k, b)
	return nil
}

// Clone returns a deep copy.
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	out := make(Fields, len(f))
	for i, fl := range f {
		out[i] = Field{Key: fl.Key, Value: append(json.RawMessage(nil), fl.Value...)}
	}
	return out
}

// Decode unmarshals the value under k into dst. It reports false when k is absent.
func (f Fields) Decode(k string, dst any) (bool, error) {
	raw, ok := f.Get(k)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, fmt.Errorf("field %q: %w", k, err)
	}
	return true, nil
}

// MarshalJSON writes members in order.
func (f Fields) MarshalJSON() ([]byte, error) {
	if len(f) == 0 {
		return []byte("{}"), nil
	}
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, fl := range f {
		kb, err := json.Marshal(fl.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		if len(fl.Value) == 0 {
			buf.WriteString("null")
		} else {
			buf.Write(fl.Value)
		}
		if i < len(f)-1 {
			buf.WriteByte(',')
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts only a JSON object.
func (f *Fields) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errNotObject
	}
	out := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return errNotObject
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		out.Set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = out
	return nil
}
