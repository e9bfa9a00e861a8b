package transfer

import "errors"

var (
	// ErrInvalidAmount rejects non-positive amounts on every operation.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrInsufficientFunds rejects withdrawals and transfers that
	// exceed the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnknownIBAN means the receiver IBAN matched no ledger record.
	ErrUnknownIBAN = errors.New("IBAN does not exist")

	// ErrUnknownSender means the sender IBAN matched no ledger record.
	// A logged-in session should never hit this; it is checked anyway.
	ErrUnknownSender = errors.New("sender account not found")

	// ErrSameAccount rejects a transfer onto the sending account.
	ErrSameAccount = errors.New("sender and receiver are the same account")

	// ErrUnknownUsername means no ledger record carries the username.
	ErrUnknownUsername = errors.New("account not found")
)
