package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Amount is a balance value. It decodes from a JSON number or numeric string and
// encodes as a JSON number, keeping the scale it was given (100.50 stays 100.50).
// Numbers outside the decimal range, such as 1e+21, are kept verbatim.
type Amount struct {
	d   decimal.Decimal
	raw string
}

// ParseAmount parses a decimal string such as "250" or "-12.75".
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.Parse(s)
	if err == nil {
		return Amount{d: d}, nil
	}
	if _, ok := wideNumber(s); ok {
		return Amount{raw: s}, nil
	}
	return Amount{}, err
}

// wideNumber accepts a finite JSON number that decimal could not hold.
func wideNumber(s string) (float64, bool) {
	if s == "" || !(s[0] == '-' || (s[0] >= '0' && s[0] <= '9')) || !json.Valid([]byte(s)) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// MustParseAmount is ParseAmount for constants and tests.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) String() string {
	if a.raw != "" {
		return a.raw
	}
	return a.d.String()
}

func (a Amount) float() float64 {
	if a.raw != "" {
		f, _ := wideNumber(a.raw)
		return f
	}
	f, _ := strconv.ParseFloat(a.d.String(), 64)
	return f
}

// IsZero reports whether the amount equals zero at any scale.
func (a Amount) IsZero() bool {
	if a.raw != "" {
		return a.float() == 0
	}
	return a.d.IsZero()
}

// Equal compares numerically, so 100 equals 100.00.
func (a Amount) Equal(b Amount) bool {
	if a.raw != "" || b.raw != "" {
		return a.float() == b.float()
	}
	return a.d.Cmp(b.d) == 0
}

// MarshalJSON writes a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) { return []byte(a.String()), nil }

var errAmountType = errors.New("amount must be a number or numeric string")

// UnmarshalJSON accepts 12.5, "12.5" and null (zero).
func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*a = Amount{}
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := ParseAmount(s)
		if err != nil {
			return errAmountType
		}
		*a = v
		return nil
	case len(b) > 0 && (b[0] == '-' || (b[0] >= '0' && b[0] <= '9')):
		v, err := ParseAmount(string(b))
		if err != nil {
			return err
		}
		*a = v
		return nil
	default:
		return errAmountType
	}
}
