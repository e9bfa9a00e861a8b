package ledger

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store owns the account ledger file. Every operation is a fresh file
// read or a whole-file rewrite; no state is cached between calls. The
// store assumes a single process mutating the file at a time.
type Store struct {
	path string
	log  *log.Logger
}

// NewStore returns a store over the given ledger file. A nil logger
// falls back to the standard logger.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, log: logger}
}

// LoadAll reads every well-formed record in file order, skipping the
// header and dropping malformed rows. An unreadable file is logged and
// yields an empty result rather than an error.
func (s *Store) LoadAll() []Record {
	f, err := os.Open(s.path)
	if err != nil {
		s.log.Printf("ledger: load %s: %v", s.path, err)
		return nil
	}
	defer f.Close()

	var records []Record
	sc := bufio.NewScanner(f)
	header := true
	for sc.Scan() {
		if header {
			header = false
			continue
		}
		if r, ok := ParseRecord(sc.Text()); ok {
			records = append(records, r)
		}
	}
	if err := sc.Err(); err != nil {
		s.log.Printf("ledger: read %s: %v", s.path, err)
		return nil
	}
	return records
}

// FindByUsername returns the first record with the given username.
func (s *Store) FindByUsername(username string) (Record, bool) {
	for _, r := range s.LoadAll() {
		if r.Username == username {
			return r, true
		}
	}
	return Record{}, false
}

// FindByIBAN returns the balance of the first record with the given
// IBAN. Existence and current balance are all the transfer path needs.
func (s *Store) FindByIBAN(iban string) (decimal.Decimal, bool) {
	for _, r := range s.LoadAll() {
		if r.IBAN == iban {
			return r.Balance, true
		}
	}
	return decimal.Decimal{}, false
}

// Append writes one record to the end of the file, creating it if
// absent. A freshly created or empty file gets the header first so the
// load-time header skip never swallows a record. Uniqueness of username
// and IBAN is the caller's responsibility.
func (s *Store) Append(r Record) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		s.log.Printf("ledger: append %s: %v", s.path, err)
		return fmt.Errorf("ledger: append: %w", err)
	}
	defer f.Close()

	if st, err := f.Stat(); err == nil && st.Size() == 0 {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			s.log.Printf("ledger: append %s: %v", s.path, err)
			return fmt.Errorf("ledger: append: %w", err)
		}
	}
	if _, err := fmt.Fprintln(f, r.Serialize()); err != nil {
		s.log.Printf("ledger: append %s: %v", s.path, err)
		return fmt.Errorf("ledger: append: %w", err)
	}
	return nil
}

// UpdateBalance sets a new balance on the first record with the given
// username and rewrites the file. No matching record leaves the file
// untouched and returns nil.
func (s *Store) UpdateBalance(username string, newBalance decimal.Decimal) error {
	matched := false
	return s.applyUpdate(func(r *Record) bool {
		if matched || r.Username != username {
			return false
		}
		r.Balance = newBalance
		matched = true
		return true
	})
}

// UpdateBalancesByIBAN applies several balance updates in one rewrite,
// so dependent updates (the two legs of a transfer) either both reach
// the file or neither does. Each IBAN updates its first matching record;
// keys with no matching record are ignored.
func (s *Store) UpdateBalancesByIBAN(updates map[string]decimal.Decimal) error {
	pending := make(map[string]decimal.Decimal, len(updates))
	for iban, balance := range updates {
		pending[iban] = balance
	}
	return s.applyUpdate(func(r *Record) bool {
		balance, ok := pending[r.IBAN]
		if !ok {
			return false
		}
		r.Balance = balance
		delete(pending, r.IBAN)
		return true
	})
}

// applyUpdate is the single scan-and-rewrite mechanism behind every
// balance mutation: load all records, let mutate change them in memory,
// rewrite the whole file once. The file is not touched when nothing
// changed. Isolating the mechanism here keeps call sites independent of
// the persistence strategy.
func (s *Store) applyUpdate(mutate func(*Record) bool) error {
	records := s.LoadAll()
	changed := false
	for i := range records {
		if mutate(&records[i]) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.rewrite(records)
}

// rewrite regenerates the whole file (header plus every record) in a
// temp file and renames it over the ledger, so a crash mid-write cannot
// truncate the live file.
func (s *Store) rewrite(records []Record) error {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, r := range records {
		b.WriteString(r.Serialize())
		b.WriteByte('\n')
	}

	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(s.path), uuid.NewString()))
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		s.log.Printf("ledger: rewrite %s: %v", s.path, err)
		return fmt.Errorf("ledger: rewrite: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		s.log.Printf("ledger: rewrite %s: %v", s.path, err)
		return fmt.Errorf("ledger: rewrite: %w", err)
	}
	return nil
}
