package account

// CreateAccountSchema carries the input for account creation. Free-text
// fields must not contain the ledger delimiter: the file format has no
// quoting or escaping, so a comma is rejected at this boundary.
type CreateAccountSchema struct {
	FirstName string `validate:"required,alpha"`
	LastName  string `validate:"required,alpha"`
	Address   string `validate:"required,excludesall=0x2C"`
	Username  string `validate:"required,excludesall=0x2C"`
	Password  string `validate:"required,excludesall=0x2C"`
}
