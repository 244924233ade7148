package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "public", cfg.DataDir)
	assert.Equal(t, "contas.html", cfg.Index)
	assert.Equal(t, "BRL", cfg.Currency)
	assert.Equal(t, int64(102400), cfg.MaxBodyBytes)
	assert.Equal(t, 10*time.Second, cfg.ShutdownWait)
	assert.Equal(t, filepath.Join("public", "contas.jsonl"), cfg.AccountsPath())
	assert.Equal(t, filepath.Join("public", "extrato.jsonl"), cfg.LedgerPath())
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CONTAS_DATA_DIR=/srv/contas\nCONTAS_CURRENCY=USD\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("CONTAS_DATA_DIR")
		os.Unsetenv("CONTAS_CURRENCY")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/contas", cfg.DataDir)
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, filepath.Join("/srv/contas", "extrato.jsonl"), cfg.LedgerPath())
}

func TestEnvironmentWinsOverEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CONTAS_ADDR=:9000\n"), 0o644))
	t.Setenv("CONTAS_ADDR", ":7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Addr)
}

func TestInvalidDuration(t *testing.T) {
	t.Setenv("CONTAS_SHUTDOWN_WAIT", "soon")
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
