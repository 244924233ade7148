package httpapi

import "github.com/tinoosan/contas/internal/storage/jsonl"

// Compile-time interface assertions for the file stores against HTTP API interfaces.
var (
	_ ReadyChecker = (*jsonl.AccountStore)(nil)
	_ ReadyChecker = (*jsonl.LedgerStore)(nil)
)
