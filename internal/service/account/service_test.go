package account_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinoosan/contas/internal/errs"
	"github.com/tinoosan/contas/internal/ledger"
	"github.com/tinoosan/contas/internal/service/account"
	"github.com/tinoosan/contas/internal/storage/jsonl"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setup(t *testing.T) (account.Service, *jsonl.LedgerStore) {
	t.Helper()
	dir := t.TempDir()
	acc := jsonl.NewAccountStore(filepath.Join(dir, "contas.jsonl"), testLogger())
	led := jsonl.NewLedgerStore(filepath.Join(dir, "extrato.jsonl"), acc, testLogger())
	return account.New(acc, acc, led, testLogger()), led
}

func TestCreateListAndEdit(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	var a ledger.Account
	require.NoError(t, json.Unmarshal([]byte(`{"codigo":"A1","descricao":"Checking","saldo":0}`), &a))
	require.NoError(t, svc.Create(ctx, a))

	require.NoError(t, svc.SetDescription(ctx, "A1", "Corrente"))
	require.NoError(t, svc.SetBalance(ctx, "A1", ledger.MustParseAmount("10.5")))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Corrente", list[0].Descricao)
	assert.Equal(t, "10.5", list[0].Saldo.String())

	assert.ErrorIs(t, svc.SetBalance(ctx, "B", ledger.MustParseAmount("1")), errs.ErrNotFound)
	assert.ErrorIs(t, svc.SetDescription(ctx, "B", "x"), errs.ErrNotFound)
}

func TestDeleteUsesMovementCheck(t *testing.T) {
	svc, led := setup(t)
	ctx := context.Background()
	require.NoError(t, svc.Create(ctx, ledger.Account{Codigo: "A1"}))
	require.NoError(t, svc.Create(ctx, ledger.Account{Codigo: "B2"}))
	require.NoError(t, led.Append(ctx, ledger.Movement{ID: ledger.StringID("1"), CodigoConta: "A1", Data: "2024-01-01", Saldo: ledger.MustParseAmount("5")}))

	had, err := svc.Delete(ctx, "A1")
	require.NoError(t, err)
	assert.True(t, had)

	had, err = svc.Delete(ctx, "B2")
	require.NoError(t, err)
	assert.False(t, had)

	_, err = svc.Delete(ctx, "B2")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
