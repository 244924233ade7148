package jsonl

import (
	"context"
	"log/slog"

	"github.com/tinoosan/contas/internal/errs"
	"github.com/tinoosan/contas/internal/ledger"
)

// LedgerStore owns extrato.jsonl.
type LedgerStore struct {
	f        *lineFile
	accounts ledger.BalanceSetter
	log      *slog.Logger
}

// NewLedgerStore opens (lazily) the movements file at path. accounts receives
// recomputed balances after DeleteByID; it may be nil.
func NewLedgerStore(path string, accounts ledger.BalanceSetter, logger *slog.Logger) *LedgerStore {
	f := newLineFile(path, "extrato", logger)
	return &LedgerStore{f: f, accounts: accounts, log: f.log}
}

// Path returns the backing file.
func (s *LedgerStore) Path() string { return s.f.path }

// Ready reports whether the data directory is reachable.
func (s *LedgerStore) Ready(_ context.Context) error { return dirReady(s.f.path) }

// List returns the movements selected by f in file order.
func (s *LedgerStore) List(_ context.Context, f ledger.Filter) ([]ledger.Movement, error) {
	all, err := s.all()
	if err != nil {
		return nil, err
	}
	out := make([]ledger.Movement, 0)
	for _, m := range all {
		if f.Match(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

// Append writes m as a new line. The account's cached balance is not touched;
// callers sync it with AccountStore.SetBalance.
func (s *LedgerStore) Append(_ context.Context, m ledger.Movement) error {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	return s.f.append(m)
}

// HasMovements reports whether any movement references codigo.
func (s *LedgerStore) HasMovements(_ context.Context, codigo string) (bool, error) {
	all, err := s.all()
	if err != nil {
		return false, err
	}
	for _, m := range all {
		if m.CodigoConta == codigo {
			return true, nil
		}
	}
	return false, nil
}

// LastBalances derives each account's balance from the saldo of its last
// movement in file order.
func (s *LedgerStore) LastBalances(_ context.Context) (map[string]ledger.Amount, error) {
	all, err := s.all()
	if err != nil {
		return nil, err
	}
	out := make(map[string]ledger.Amount)
	for _, m := range all {
		out[m.CodigoConta] = m.Saldo
	}
	return out, nil
}

// DeleteByID removes every movement whose id coerces to id, then pushes the
// recomputed balance of the first removed movement's account.
func (s *LedgerStore) DeleteByID(ctx context.Context, id string) error {
	codigo, saldo, err := s.removeByID(id)
	if err != nil {
		return err
	}
	if s.accounts == nil {
		return nil
	}
	// The ledger lock is released here, so the accounts lock is never taken
	// inside it.
	matched, err := s.accounts.ApplyBalance(ctx, codigo, saldo)
	if err != nil {
		return err
	}
	balanceRecomputations.Inc()
	s.log.Debug("balance recomputed", "codigo", codigo, "saldo", saldo.String(), "accounts", matched)
	return nil
}

func (s *LedgerStore) removeByID(id string) (string, ledger.Amount, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	lines, exists, err := s.f.read()
	if err != nil {
		return "", ledger.Amount{}, err
	}
	if !exists {
		return "", ledger.Amount{}, fileMissing(s.f.path)
	}
	movs, err := decodeLines[ledger.Movement](s.f.path, lines)
	if err != nil {
		return "", ledger.Amount{}, err
	}
	var (
		keep    = make([][]byte, 0, len(lines))
		kept    = make([]ledger.Movement, 0, len(movs))
		codigo  string
		removed int
	)
	for i, m := range movs {
		if m.ID.Matches(id) {
			if removed == 0 {
				codigo = m.CodigoConta
			}
			removed++
			continue
		}
		keep = append(keep, lines[i].raw)
		kept = append(kept, m)
	}
	if removed == 0 {
		return "", ledger.Amount{}, errs.ErrNotFound
	}
	if err := s.f.replace(keep); err != nil {
		return "", ledger.Amount{}, err
	}
	var saldo ledger.Amount
	for _, m := range kept {
		if m.CodigoConta == codigo {
			saldo = m.Saldo
		}
	}
	s.log.Debug("movements removed", "id", id, "count", removed, "codigo", codigo)
	return codigo, saldo, nil
}

func (s *LedgerStore) all() ([]ledger.Movement, error) {
	s.f.mu.Lock()
	defer s.f.mu.Unlock()
	lines, _, err := s.f.read()
	if err != nil {
		return nil, err
	}
	return decodeLines[ledger.Movement](s.f.path, lines)
}
