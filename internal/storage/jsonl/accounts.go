package jsonl

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tinoosan/contas/internal/errs"
	"github.com/tinoosan/contas/internal/ledger"
)

// AccountStore owns contas.jsonl.
type AccountStore struct {
	f *lineFile
}

// NewAccountStore opens (lazily) the accounts file at path.
func NewAccountStore(path string, logger *slog.Logger) *AccountStore {
	return &AccountStore{f: newLineFile(path, "contas", logger)}
}

// Path returns the backing file.
func (s *AccountStore) Path() string { return s.f.path }

// Ready reports whether the data directory is reachable.
func (s *AccountStore) Ready(_ context.Context) error { return dirReady(s.f.path) }

// List returns every account in file order. An absent file is an empty list.
func (s *AccountStore) List(_ context.Context) ([]ledger.Account, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	lines, _, err := s.f.read()
	if err != nil {
		return nil, err
	}
	return decodeLines[ledger.Account](s.f.path, lines)
}

// Add appends a as a new line. Duplicate codes are not checked.
func (s *AccountStore) Add(_ context.Context, a ledger.Account) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	return s.f.append(a)
}

// SetBalance writes saldo onto every account with codigo. The file is left
// untouched when nothing matches.
func (s *AccountStore) SetBalance(_ context.Context, codigo string, saldo ledger.Amount) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	lines, exists, err := s.f.read()
	if err != nil {
		return err
	}
	if !exists {
		return fileMissing(s.f.path)
	}
	out, matched, err := s.rewrite(lines, codigo, func(a *ledger.Account) { a.SetSaldo(saldo) })
	if err != nil {
		return err
	}
	if matched == 0 {
		return errs.ErrNotFound
	}
	return s.f.replace(out)
}

// SetDescription writes descricao onto every account with codigo. Unlike
// SetBalance the file is rewritten even when nothing matched; ErrNotFound is
// returned afterwards in that case.
func (s *AccountStore) SetDescription(_ context.Context, codigo, descricao string) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	lines, exists, err := s.f.read()
	if err != nil {
		return err
	}
	if !exists {
		return fileMissing(s.f.path)
	}
	out, matched, err := s.rewrite(lines, codigo, func(a *ledger.Account) { a.Descricao = descricao })
	if err != nil {
		return err
	}
	if err := s.f.replace(out); err != nil {
		return err
	}
	if matched == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// ApplyBalance is the recomputation hook used by LedgerStore. An absent
// accounts file is a silent no-op.
func (s *AccountStore) ApplyBalance(_ context.Context, codigo string, saldo ledger.Amount) (int, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	lines, exists, err := s.f.read()
	if err != nil || !exists {
		return 0, err
	}
	out, matched, err := s.rewrite(lines, codigo, func(a *ledger.Account) { a.SetSaldo(saldo) })
	if err != nil {
		return 0, err
	}
	if err := s.f.replace(out); err != nil {
		return 0, err
	}
	return matched, nil
}

// Delete removes every account with codigo. refs is consulted after the
// match is confirmed; its answer is informational and never blocks deletion.
func (s *AccountStore) Delete(ctx context.Context, codigo string, refs ledger.MovementChecker) (bool, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	lines, exists, err := s.f.read()
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fileMissing(s.f.path)
	}
	accounts, err := decodeLines[ledger.Account](s.f.path, lines)
	if err != nil {
		return false, err
	}
	keep := make([][]byte, 0, len(lines))
	removed := 0
	for i, a := range accounts {
		if a.Codigo == codigo {
			removed++
			continue
		}
		keep = append(keep, lines[i].raw)
	}
	if removed == 0 {
		return false, errs.ErrNotFound
	}
	var hadMovements bool
	if refs != nil {
		// Lock order is accounts then ledger; the ledger never calls back here
		// while holding its own lock.
		if hadMovements, err = refs.HasMovements(ctx, codigo); err != nil {
			return false, err
		}
	}
	if err := s.f.replace(keep); err != nil {
		return false, err
	}
	s.f.log.Debug("accounts removed", "codigo", codigo, "count", removed, "had_movements", hadMovements)
	return hadMovements, nil
}

// rewrite decodes every line, applies fn to matching accounts and returns the
// encoded result. Untouched lines are kept byte for byte.
func (s *AccountStore) rewrite(lines []line, codigo string, fn func(*ledger.Account)) ([][]byte, int, error) {
	out := make([][]byte, 0, len(lines))
	matched := 0
	for _, l := range lines {
		var a ledger.Account
		if err := json.Unmarshal(l.raw, &a); err != nil {
			return nil, 0, &LineError{Path: s.f.path, Line: l.no, Err: err}
		}
		if a.Codigo != codigo {
			out = append(out, l.raw)
			continue
		}
		matched++
		fn(&a)
		b, err := encode(a)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, matched, nil
}
