// Package config loads process settings from the environment, after an
// optional .env file.
package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	AccountsFile = "contas.jsonl"
	LedgerFile   = "extrato.jsonl"
)

type App struct {
	Addr      string `envconfig:"CONTAS_ADDR" default:":3000"`
	DataDir   string `envconfig:"CONTAS_DATA_DIR" default:"public"`
	PublicDir string `envconfig:"CONTAS_PUBLIC_DIR" default:"public"`
	// Index is served for GET / from PublicDir.
	Index string `envconfig:"CONTAS_INDEX" default:"contas.html"`
	// Currency only affects how the audit formats amounts.
	Currency     string        `envconfig:"CONTAS_CURRENCY" default:"BRL"`
	MaxBodyBytes int64         `envconfig:"CONTAS_MAX_BODY_BYTES" default:"102400"`
	ShutdownWait time.Duration `envconfig:"CONTAS_SHUTDOWN_WAIT" default:"10s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"json"`
}

// AccountsPath is the accounts file inside DataDir.
func (a App) AccountsPath() string { return filepath.Join(a.DataDir, AccountsFile) }

// LedgerPath is the movements file inside DataDir.
func (a App) LedgerPath() string { return filepath.Join(a.DataDir, LedgerFile) }

// Load reads the first env file that exists among envFiles (or .env when none
// are given) and then the process environment. Missing files are not an error.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("env file not loaded", "path", path, "err", err)
			continue
		}
		logger.Debug("env file loaded", "path", path)
		break
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
