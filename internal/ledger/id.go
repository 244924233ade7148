package ledger

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ID is a caller-supplied movement identifier. It keeps the raw JSON it was
// decoded from and compares through its string form, so 7 and "7" are the same id.
type ID struct {
	raw json.RawMessage
}

// StringID builds an ID holding a JSON string.
func StringID(s string) ID {
	b, _ := json.Marshal(s)
	return ID{raw: b}
}

// NumberID builds an ID holding a JSON number.
func NumberID(n int64) ID { return ID{raw: json.RawMessage(strconv.FormatInt(n, 10))} }

// IsSet reports whether the id was present in the decoded record.
func (id ID) IsSet() bool { return len(id.raw) > 0 }

// Matches compares against a path or query value.
func (id ID) Matches(s string) bool { return id.String() == s }

// String renders the id the way a loosely typed client would coerce it:
// strings as-is, numbers in shortest form, an absent id as "undefined".
func (id ID) String() string {
	if !id.IsSet() {
		return "undefined"
	}
	return coerce(id.raw)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if !id.IsSet() {
		return []byte("null"), nil
	}
	return id.raw, nil
}

func (id *ID) UnmarshalJSON(b []byte) error {
	id.raw = append(json.RawMessage(nil), bytes.TrimSpace(b)...)
	return nil
}

func coerce(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case '{':
		return "[object Object]"
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			parts := make([]string, len(items))
			for i, it := range items {
				if s := coerce(it); s != "null" {
					parts[i] = s
				}
			}
			return strings.Join(parts, ",")
		}
	case 't', 'f', 'n':
		return string(raw)
	default:
		if f, err := strconv.ParseFloat(string(raw), 64); err == nil {
			return formatNumber(f)
		}
	}
	return string(raw)
}

// formatNumber mirrors the shortest round-trip number formatting used by
// JSON producers in the browser: plain notation in [1e-6, 1e21), exponent otherwise.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	s = strings.Replace(s, "e-0", "e-", 1)
	s = strings.Replace(s, "e+0", "e+", 1)
	return s
}
