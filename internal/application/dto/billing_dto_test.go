package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/clientes-api/internal/application/dto"
)

func amount(v int64) *int64 { return &v }

// AmountTotal suma los montos embebidos; es independiente de Total, que
// viaja tal cual lo mandó el caller.
func TestInvoice_AmountTotal(t *testing.T) {
	inv := dto.Invoice{
		Transactions: []dto.Transaction{
			{Amount: amount(10)},
			{Amount: amount(20)},
			{Amount: nil}, // sin monto no aporta a la suma
		},
		Total: amount(999),
	}
	assert.Equal(t, int64(30), inv.AmountTotal())
}

func TestInvoice_AmountTotalSinTransacciones(t *testing.T) {
	assert.Equal(t, int64(0), dto.Invoice{}.AmountTotal())
}
