// Package account creates accounts and answers credential lookups on
// top of the ledger store.
package account

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ekdi/banking/internal/helper"
	"github.com/ekdi/banking/internal/ledger"
)

type Service struct {
	store *ledger.Store
}

func NewService(store *ledger.Store) *Service {
	return &Service{store: store}
}

// Exists reports whether a ledger record carries the username.
func (s *Service) Exists(username string) bool {
	_, ok := s.store.FindByUsername(username)
	return ok
}

// Create validates the input, assigns the next account number and a
// generated IBAN, and appends the new record with a zero balance. The
// append is the terminal step, so no rollback is needed.
func (s *Service) Create(in CreateAccountSchema) (ledger.Record, error) {
	if err := helper.ValidateInput(&in); err != nil {
		return ledger.Record{}, err
	}
	username := strings.TrimSpace(in.Username)
	if s.Exists(username) {
		return ledger.Record{}, ErrDuplicateUsername
	}

	number := s.nextAccountNumber()
	rec := ledger.Record{
		AccountNumber: number,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Address:       strings.TrimSpace(in.Address),
		Username:      username,
		Password:      strings.TrimSpace(in.Password),
		IBAN:          generateIBAN(number),
		Balance:       decimal.Zero,
	}
	if err := s.store.Append(rec); err != nil {
		return ledger.Record{}, err
	}
	return rec, nil
}

// Authenticate compares the stored credentials verbatim and returns the
// matching record.
func (s *Service) Authenticate(username, password string) (ledger.Record, error) {
	rec, ok := s.store.FindByUsername(username)
	if !ok || rec.Password != password {
		return ledger.Record{}, ErrBadCredentials
	}
	return rec, nil
}

// nextAccountNumber is max(existing)+1, starting at 1 on an empty
// ledger. Scanning all rows instead of trusting the last one keeps the
// sequence monotonic even on a reordered file.
func (s *Service) nextAccountNumber() int {
	next := 1
	for _, r := range s.store.LoadAll() {
		if r.AccountNumber >= next {
			next = r.AccountNumber + 1
		}
	}
	return next
}

// generateIBAN builds the synthetic routing key: "DE", a two-digit
// pseudo check value, the "0000" filler and the ten-digit zero-padded
// account number. Uniqueness follows from the account number.
func generateIBAN(accountNumber int) string {
	return fmt.Sprintf("DE%02d0000%010d", rand.IntN(98), accountNumber)
}
