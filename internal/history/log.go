// Package history is the append-only writer for transfer records. The
// core only ever writes history; reading it back is a presentation
// concern.
package history

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord is one line of the history file: sender IBAN, receiver
// IBAN, amount and an ISO-8601 timestamp. Created once per successful
// transfer, never updated.
type TransferRecord struct {
	SenderIBAN   string
	ReceiverIBAN string
	Amount       decimal.Decimal
	Timestamp    time.Time
}

// Serialize renders the record as one comma-delimited history line.
func (t TransferRecord) Serialize() string {
	return strings.Join([]string{
		t.SenderIBAN,
		t.ReceiverIBAN,
		t.Amount.String(),
		t.Timestamp.Format(time.RFC3339),
	}, ",")
}

// Log appends transfer records to the history file. The file has no
// header and one record per line.
type Log struct {
	path string
	log  *log.Logger
}

// NewLog returns a log writer over the given history file. A nil logger
// falls back to the standard logger.
func NewLog(path string, logger *log.Logger) *Log {
	if logger == nil {
		logger = log.Default()
	}
	return &Log{path: path, log: logger}
}

// Append writes one record to the end of the history file, creating it
// if absent.
func (l *Log) Append(rec TransferRecord) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.log.Printf("history: append %s: %v", l.path, err)
		return fmt.Errorf("history: append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, rec.Serialize()); err != nil {
		l.log.Printf("history: append %s: %v", l.path, err)
		return fmt.Errorf("history: append: %w", err)
	}
	return nil
}
