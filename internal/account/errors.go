package account

import "errors"

var (
	// ErrDuplicateUsername rejects creation with a username that is
	// already in the ledger.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrBadCredentials covers both an unknown username and a wrong
	// password; login callers get no hint which one it was.
	ErrBadCredentials = errors.New("invalid username or password")
)
