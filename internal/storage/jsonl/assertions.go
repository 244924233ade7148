package jsonl

import (
	"github.com/tinoosan/contas/internal/ledger"
	accountsvc "github.com/tinoosan/contas/internal/service/account"
	"github.com/tinoosan/contas/internal/service/journal"
)

// Compile-time interface assertions documenting which interfaces the stores satisfy.
var (
	// Capabilities passed between the stores
	_ ledger.BalanceSetter   = (*AccountStore)(nil)
	_ ledger.MovementChecker = (*LedgerStore)(nil)

	// Service layer repos and writers
	_ accountsvc.Repo   = (*AccountStore)(nil)
	_ accountsvc.Writer = (*AccountStore)(nil)
	_ journal.Repo      = (*LedgerStore)(nil)
	_ journal.Writer    = (*LedgerStore)(nil)
	_ journal.Accounts  = (*AccountStore)(nil)
)
