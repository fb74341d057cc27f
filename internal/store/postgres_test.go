package store

import (
	"testing"

	"github.com/rloureiro/cashbook/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSignedAmount(t *testing.T) {
	cases := []struct {
		name   string
		typ    domain.TransactionType
		amount float64
		want   int64
	}{
		{"credit stored as given", domain.TypeCredit, 10000, 10000},
		{"credit keeps input sign", domain.TypeCredit, -250, -250},
		{"debit negated", domain.TypeDebit, 7500, -7500},
		{"debit of negative still negative", domain.TypeDebit, -7500, -7500},
		{"credit rounds half away from zero", domain.TypeCredit, 10.5, 11},
		{"credit rounds down", domain.TypeCredit, 10.4, 10},
		{"debit rounds before negating", domain.TypeDebit, 10.6, -11},
		{"zero", domain.TypeDebit, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, signedAmount(tc.typ, tc.amount))
		})
	}
}
