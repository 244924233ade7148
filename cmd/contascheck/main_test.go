package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(t *testing.T, accounts, movements string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contas.jsonl"), []byte(accounts), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extrato.jsonl"), []byte(movements), 0o644))
	return dir
}

func TestRunReportsAndFixesDrift(t *testing.T) {
	dir := writeData(t,
		"{\"codigo\":\"A1\",\"saldo\":100}\n{\"codigo\":\"B2\",\"saldo\":0}\n",
		"{\"id\":1,\"codigoConta\":\"A1\",\"data\":\"2024-01-01\",\"saldo\":100}\n{\"id\":2,\"codigoConta\":\"A1\",\"data\":\"2024-01-02\",\"saldo\":80.5}\n",
	)
	noEnv := filepath.Join(dir, "absent.env")

	var out, errOut bytes.Buffer
	code := run([]string{"-env", noEnv, "-data", dir}, &out, &errOut)
	require.Equal(t, 3, code, errOut.String())
	assert.Contains(t, out.String(), "A1")
	assert.Contains(t, out.String(), "BRL 80.50")
	assert.NotContains(t, out.String(), "B2")

	out.Reset()
	code = run([]string{"-env", noEnv, "-data", dir, "-fix"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "1 account(s) resynced")

	b, err := os.ReadFile(filepath.Join(dir, "contas.jsonl"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "{\"codigo\":\"A1\",\"saldo\":80.5}\n"), string(b))

	out.Reset()
	code = run([]string{"-env", noEnv, "-data", dir}, &out, &errOut)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "all balances match")
}

func TestRunCorruptData(t *testing.T) {
	dir := writeData(t, "{oops\n", "")
	var out, errOut bytes.Buffer
	code := run([]string{"-env", filepath.Join(dir, "absent.env"), "-data", dir}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "contas.jsonl:1")
}
