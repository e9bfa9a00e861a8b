package main

import (
	"bufio"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/ekdi/banking/internal/account"
	"github.com/ekdi/banking/internal/history"
	"github.com/ekdi/banking/internal/ledger"
	"github.com/ekdi/banking/internal/transfer"
)

const (
	defaultLedgerFile  = "csv/accounts.csv"
	defaultHistoryFile = "csv/transactions.csv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file, using system environment variables")
	}

	ledgerFile := envOr("BANK_LEDGER_FILE", defaultLedgerFile)
	historyFile := envOr("BANK_HISTORY_FILE", defaultHistoryFile)
	for _, dir := range []string{filepath.Dir(ledgerFile), filepath.Dir(historyFile)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create data directory %s: %v", dir, err)
		}
	}

	store := ledger.NewStore(ledgerFile, log.Default())

	ui := &console{
		in:        bufio.NewScanner(os.Stdin),
		accounts:  account.NewService(store),
		transfers: transfer.NewService(store, history.NewLog(historyFile, log.Default())),
	}
	ui.run()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
