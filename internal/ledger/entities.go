package ledger

import (
	"encoding/json"

	"github.com/tinoosan/contas/internal/meta"
)

// Stored member names. They are part of the on-disk and HTTP formats.
const (
	keyCodigo      = "codigo"
	keyDescricao   = "descricao"
	keySaldo       = "saldo"
	keyID          = "id"
	keyCodigoConta = "codigoConta"
	keyData        = "data"
)

// Account is a ledger subject identified by Codigo. Saldo is a cache of the
// saldo of the account's last movement, or zero when it has none.
type Account struct {
	Codigo    string
	Descricao string
	Saldo     Amount
	// Fields holds every member decoded from storage, in source order. The typed
	// fields above take precedence when encoding; the rest pass through untouched.
	Fields meta.Fields
}

// Movement is one entry of an account's statement. Saldo is the balance after
// the movement as supplied by the caller; the ledger never computes it.
type Movement struct {
	ID          ID
	CodigoConta string
	// Data is compared as a plain string, so callers must use a sortable layout.
	Data   string
	Saldo  Amount
	Fields meta.Fields
}

// HasData reports whether the movement carries a data member at all.
// A movement without one never satisfies a date bound.
func (m Movement) HasData() bool { return m.Data != "" || m.Fields.Has(keyData) }

// SetSaldo assigns v and marks saldo as present, so it is stored even when
// zero on a record that never had one.
func (a *Account) SetSaldo(v Amount) {
	a.Saldo = v
	if !a.Fields.Has(keySaldo) {
		b, _ := v.MarshalJSON()
		a.Fields.Set(keySaldo, b)
	}
}

func (a *Account) UnmarshalJSON(b []byte) error {
	var f meta.Fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	out := Account{Fields: f}
	if _, err := f.Decode(keyCodigo, &out.Codigo); err != nil {
		return err
	}
	if _, err := f.Decode(keyDescricao, &out.Descricao); err != nil {
		return err
	}
	if _, err := f.Decode(keySaldo, &out.Saldo); err != nil {
		return err
	}
	*a = out
	return nil
}

func (a Account) MarshalJSON() ([]byte, error) {
	out := a.Fields.Clone()
	if err := putString(&out, keyCodigo, a.Codigo); err != nil {
		return nil, err
	}
	if err := putString(&out, keyDescricao, a.Descricao); err != nil {
		return nil, err
	}
	putAmount(&out, keySaldo, a.Saldo)
	return out.MarshalJSON()
}

func (m *Movement) UnmarshalJSON(b []byte) error {
	var f meta.Fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	out := Movement{Fields: f}
	if raw, ok := f.Get(keyID); ok {
		if err := out.ID.UnmarshalJSON(raw); err != nil {
			return err
		}
	}
	if _, err := f.Decode(keyCodigoConta, &out.CodigoConta); err != nil {
		return err
	}
	if _, err := f.Decode(keyData, &out.Data); err != nil {
		return err
	}
	if _, err := f.Decode(keySaldo, &out.Saldo); err != nil {
		return err
	}
	*m = out
	return nil
}

func (m Movement) MarshalJSON() ([]byte, error) {
	out := m.Fields.Clone()
	if m.ID.IsSet() {
		out.Set(keyID, m.ID.raw)
	}
	if err := putString(&out, keyCodigoConta, m.CodigoConta); err != nil {
		return nil, err
	}
	if err := putString(&out, keyData, m.Data); err != nil {
		return nil, err
	}
	putAmount(&out, keySaldo, m.Saldo)
	return out.MarshalJSON()
}

// putString writes v under k unless the stored value already decodes to v,
// or v is empty and k was never present.
func putString(f *meta.Fields, k, v string) error {
	if raw, ok := f.Get(k); ok {
		var cur string
		if json.Unmarshal(raw, &cur) == nil && cur == v {
			return nil
		}
	} else if v == "" {
		return nil
	}
	return f.SetValue(k, v)
}

func putAmount(f *meta.Fields, k string, v Amount) {
	if raw, ok := f.Get(k); ok {
		var cur Amount
		if json.Unmarshal(raw, &cur) == nil && cur.Equal(v) {
			return
		}
	} else if v.IsZero() {
		return
	}
	b, _ := v.MarshalJSON()
	f.Set(k, b)
}
