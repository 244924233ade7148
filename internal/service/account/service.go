// Package account implements the account operations: create, list, balance
// sync, description edits and deletion with an informational movement check.
package account

import (
	"context"
	"log/slog"

	"github.com/tinoosan/contas/internal/ledger"
)

type Repo interface {
	List(ctx context.Context) ([]ledger.Account, error)
}

type Writer interface {
	Add(ctx context.Context, a ledger.Account) error
	SetBalance(ctx context.Context, codigo string, saldo ledger.Amount) error
	SetDescription(ctx context.Context, codigo, descricao string) error
	Delete(ctx context.Context, codigo string, refs ledger.MovementChecker) (bool, error)
}

type Service interface {
	Create(ctx context.Context, a ledger.Account) error
	List(ctx context.Context) ([]ledger.Account, error)
	SetBalance(ctx context.Context, codigo string, saldo ledger.Amount) error
	SetDescription(ctx context.Context, codigo, descricao string) error
	// Delete removes the account and reports whether movements still reference it.
	Delete(ctx context.Context, codigo string) (bool, error)
}

type service struct {
	repo   Repo
	writer Writer
	refs   ledger.MovementChecker
	log    *slog.Logger
}

// New builds the service. refs answers the movement check on Delete and may be nil.
func New(repo Repo, writer Writer, refs ledger.MovementChecker, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{repo: repo, writer: writer, refs: refs, log: logger}
}

func (s *service) Create(ctx context.Context, a ledger.Account) error {
	if err := s.writer.Add(ctx, a); err != nil {
		return err
	}
	s.log.Info("account created", "codigo", a.Codigo)
	return nil
}

func (s *service) List(ctx context.Context) ([]ledger.Account, error) {
	return s.repo.List(ctx)
}

func (s *service) SetBalance(ctx context.Context, codigo string, saldo ledger.Amount) error {
	if err := s.writer.SetBalance(ctx, codigo, saldo); err != nil {
		return err
	}
	s.log.Info("account balance set", "codigo", codigo, "saldo", saldo.String())
	return nil
}

func (s *service) SetDescription(ctx context.Context, codigo, descricao string) error {
	if err := s.writer.SetDescription(ctx, codigo, descricao); err != nil {
		return err
	}
	s.log.Info("account description set", "codigo", codigo)
	return nil
}

func (s *service) Delete(ctx context.Context, codigo string) (bool, error) {
	had, err := s.writer.Delete(ctx, codigo, s.refs)
	if err != nil {
		return false, err
	}
	s.log.Info("account deleted", "codigo", codigo, "had_movements", had)
	return had, nil
}
