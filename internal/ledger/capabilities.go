package ledger

import "context"

// BalanceSetter receives a recomputed balance for every account with codigo.
// Implementations treat an absent accounts file as a no-op.
type BalanceSetter interface {
	ApplyBalance(ctx context.Context, codigo string, saldo Amount) (int, error)
}

// MovementChecker answers whether any movement references an account code.
type MovementChecker interface {
	HasMovements(ctx context.Context, codigo string) (bool, error)
}
