// Package transfer is the engine enforcing the balance invariants:
// amounts are positive, balances never go negative, and a transfer
// conserves the total across its two accounts.
package transfer

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ekdi/banking/internal/history"
	"github.com/ekdi/banking/internal/ledger"
)

// Service executes deposit, withdraw and transfer against the ledger
// store, appending a history record for every successful transfer. All
// operations are single-shot read-modify-write cycles with no cached
// state.
type Service struct {
	store   *ledger.Store
	history *history.Log
}

func NewService(store *ledger.Store, hist *history.Log) *Service {
	return &Service{store: store, history: hist}
}

// BalanceOf returns the current persisted balance for the username.
func (s *Service) BalanceOf(username string) (decimal.Decimal, error) {
	rec, ok := s.store.FindByUsername(username)
	if !ok {
		return decimal.Decimal{}, ErrUnknownUsername
	}
	return rec.Balance, nil
}

// Deposit adds amount to the account's balance and persists it,
// returning the new balance.
func (s *Service) Deposit(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	rec, ok := s.store.FindByUsername(username)
	if !ok {
		return decimal.Decimal{}, ErrUnknownUsername
	}
	newBalance := rec.Balance.Add(amount)
	if err := s.store.UpdateBalance(username, newBalance); err != nil {
		return decimal.Decimal{}, err
	}
	return newBalance, nil
}

// Withdraw subtracts amount from the account's balance and persists it,
// returning the new balance. The balance stays non-negative.
func (s *Service) Withdraw(username string, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	rec, ok := s.store.FindByUsername(username)
	if !ok {
		return decimal.Decimal{}, ErrUnknownUsername
	}
	if amount.GreaterThan(rec.Balance) {
		return decimal.Decimal{}, ErrInsufficientFunds
	}
	newBalance := rec.Balance.Sub(amount)
	if err := s.store.UpdateBalance(username, newBalance); err != nil {
		return decimal.Decimal{}, err
	}
	return newBalance, nil
}

// Transfer moves amount from the sender's account to the receiver's.
// Checks run in fixed order: receiver exists, amount is positive,
// sender exists, sender covers the amount. Both balance updates land in
// a single ledger rewrite, so a failure cannot debit without crediting;
// the history record is appended last.
func (s *Service) Transfer(senderIBAN, receiverIBAN string, amount decimal.Decimal) error {
	receiverBalance, ok := s.store.FindByIBAN(receiverIBAN)
	if !ok {
		return ErrUnknownIBAN
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	senderBalance, ok := s.store.FindByIBAN(senderIBAN)
	if !ok {
		return ErrUnknownSender
	}
	if senderIBAN == receiverIBAN {
		return ErrSameAccount
	}
	if senderBalance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	updates := map[string]decimal.Decimal{
		senderIBAN:   senderBalance.Sub(amount),
		receiverIBAN: receiverBalance.Add(amount),
	}
	if err := s.store.UpdateBalancesByIBAN(updates); err != nil {
		return err
	}

	return s.history.Append(history.TransferRecord{
		SenderIBAN:   senderIBAN,
		ReceiverIBAN: receiverIBAN,
		Amount:       amount,
		Timestamp:    time.Now(),
	})
}
