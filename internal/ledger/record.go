package ledger

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Header is the first line of the ledger file. It is written verbatim
// on every rewrite and skipped, never parsed, on load.
const Header = "account_number,first_name,last_name,address,username,password,IBAN,balance"

const fieldCount = 8

// Record is one row of the account ledger.
type Record struct {
	AccountNumber int
	FirstName     string
	LastName      string
	Address       string
	Username      string
	Password      string
	IBAN          string
	Balance       decimal.Decimal
}

// ParseRecord parses one ledger line. The parse is best-effort: a line
// that does not split into exactly 8 fields, or whose account number or
// balance is not numeric, is rejected without signaling an error.
func ParseRecord(line string) (Record, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return Record{}, false
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	number, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, false
	}
	balance, err := decimal.NewFromString(fields[7])
	if err != nil {
		return Record{}, false
	}
	return Record{
		AccountNumber: number,
		FirstName:     fields[1],
		LastName:      fields[2],
		Address:       fields[3],
		Username:      fields[4],
		Password:      fields[5],
		IBAN:          fields[6],
		Balance:       balance,
	}, true
}

// Serialize renders the record as one ledger line in fixed column
// order. The balance serializes exactly; two-decimal rendering is a
// display concern and stays out of the file format.
func (r Record) Serialize() string {
	return strings.Join([]string{
		strconv.Itoa(r.AccountNumber),
		r.FirstName,
		r.LastName,
		r.Address,
		r.Username,
		r.Password,
		r.IBAN,
		r.Balance.String(),
	}, ",")
}
