// Package journal implements the statement operations and the balance audit
// that compares cached account balances with the ledger.
package journal

import (
	"context"
	"log/slog"

	"github.com/tinoosan/contas/internal/ledger"
)

// Repo defines read operations needed by the service.
type Repo interface {
	List(ctx context.Context, f ledger.Filter) ([]ledger.Movement, error)
	LastBalances(ctx context.Context) (map[string]ledger.Amount, error)
}

// Writer defines write operations needed by the service.
type Writer interface {
	Append(ctx context.Context, m ledger.Movement) error
	DeleteByID(ctx context.Context, id string) error
}

// Accounts is the account side the audit reads and repairs.
type Accounts interface {
	List(ctx context.Context) ([]ledger.Account, error)
	SetBalance(ctx context.Context, codigo string, saldo ledger.Amount) error
}

// Drift is an account whose cached balance disagrees with its ledger.
type Drift struct {
	Codigo  string
	Cached  ledger.Amount
	Derived ledger.Amount
}

// Service exposes the statement operations and audit helpers.
type Service interface {
	Append(ctx context.Context, m ledger.Movement) error
	List(ctx context.Context, f ledger.Filter) ([]ledger.Movement, error)
	Delete(ctx context.Context, id string) error
	Audit(ctx context.Context) ([]Drift, error)
	Resync(ctx context.Context, drifts []Drift) error
}

type service struct {
	repo     Repo
	writer   Writer
	accounts Accounts
	log      *slog.Logger
}

func New(repo Repo, writer Writer, accounts Accounts, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, writer: writer, accounts: accounts, log: logger}
}

// Append records m. It does not touch the account's cached balance; the
// caller syncs it through the account service.
func (s *service) Append(ctx context.Context, m ledger.Movement) error {
	if err := s.writer.Append(ctx, m); err != nil {
		return err
	}
	s.log.Info("movement appended", "id", m.ID.String(), "codigo", m.CodigoConta)
	return nil
}

func (s *service) List(ctx context.Context, f ledger.Filter) ([]ledger.Movement, error) {
	return s.repo.List(ctx, f)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.writer.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Info("movement deleted", "id", id)
	return nil
}

// Audit lists accounts whose cached saldo differs from the saldo of their last
// movement, or from zero when they have none. Duplicate codes are reported once.
func (s *service) Audit(ctx context.Context) ([]Drift, error) {
	accs, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	derived, err := s.repo.LastBalances(ctx)
	if err != nil {
		return nil, err
	}
	var out []Drift
	seen := make(map[string]struct{}, len(accs))
	for _, a := range accs {
		if _, ok := seen[a.Codigo]; ok {
			continue
		}
		seen[a.Codigo] = struct{}{}
		want := derived[a.Codigo]
		if !a.Saldo.Equal(want) {
			out = append(out, Drift{Codigo: a.Codigo, Cached: a.Saldo, Derived: want})
		}
	}
	return out, nil
}

// Resync writes each drift's derived balance back onto the account.
func (s *service) Resync(ctx context.Context, drifts []Drift) error {
	for _, d := range drifts {
		if err := s.accounts.SetBalance(ctx, d.Codigo, d.Derived); err != nil {
			return err
		}
		s.log.Info("account balance resynced", "codigo", d.Codigo, "from", d.Cached.String(), "to", d.Derived.String())
	}
	return nil
}
