package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
		want Record
	}{
		{
			name: "well formed",
			line: "1,Alice,Smith,Main St-Berlin,alice,secret,DE1200000000000001,100.5",
			ok:   true,
			want: Record{
				AccountNumber: 1,
				FirstName:     "Alice",
				LastName:      "Smith",
				Address:       "Main St-Berlin",
				Username:      "alice",
				Password:      "secret",
				IBAN:          "DE1200000000000001",
				Balance:       decimal.RequireFromString("100.5"),
			},
		},
		{
			name: "fields are trimmed",
			line: " 2 , Bob , Jones , Elm St-Hamburg , bob , pw , DE3400000000000002 , 0 ",
			ok:   true,
			want: Record{
				AccountNumber: 2,
				FirstName:     "Bob",
				LastName:      "Jones",
				Address:       "Elm St-Hamburg",
				Username:      "bob",
				Password:      "pw",
				IBAN:          "DE3400000000000002",
				Balance:       decimal.Zero,
			},
		},
		{name: "too few fields", line: "1,Alice,Smith,alice,secret,100.5", ok: false},
		{name: "too many fields", line: "1,Alice,Smith,Main St,Berlin,alice,secret,DE12,100.5", ok: false},
		{name: "empty line", line: "", ok: false},
		{name: "non numeric account number", line: "x,Alice,Smith,Main St-Berlin,alice,secret,DE12,100.5", ok: false},
		{name: "non numeric balance", line: "1,Alice,Smith,Main St-Berlin,alice,secret,DE12,lots", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRecord(tt.line)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want.AccountNumber, got.AccountNumber)
			assert.Equal(t, tt.want.FirstName, got.FirstName)
			assert.Equal(t, tt.want.LastName, got.LastName)
			assert.Equal(t, tt.want.Address, got.Address)
			assert.Equal(t, tt.want.Username, got.Username)
			assert.Equal(t, tt.want.Password, got.Password)
			assert.Equal(t, tt.want.IBAN, got.IBAN)
			assert.True(t, tt.want.Balance.Equal(got.Balance), "balance %s != %s", got.Balance, tt.want.Balance)
		})
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	rec := Record{
		AccountNumber: 7,
		FirstName:     "Carol",
		LastName:      "Weber",
		Address:       "Dock Rd-Bremen",
		Username:      "carol",
		Password:      "hunter2",
		IBAN:          "DE0700000000000007",
		Balance:       decimal.RequireFromString("42.75"),
	}

	got, ok := ParseRecord(rec.Serialize())
	require.True(t, ok)
	assert.Equal(t, rec.AccountNumber, got.AccountNumber)
	assert.Equal(t, rec.Username, got.Username)
	assert.Equal(t, rec.IBAN, got.IBAN)
	assert.True(t, rec.Balance.Equal(got.Balance))
}

func TestSerializeExactBalance(t *testing.T) {
	rec := Record{AccountNumber: 1, Balance: decimal.RequireFromString("10.125")}
	line := rec.Serialize()
	assert.Contains(t, line, ",10.125")
}
