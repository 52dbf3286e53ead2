package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teapos/models"
)

func TestBuildComputesTotals(t *testing.T) {
	lines := []models.CartLine{
		{ItemID: "a", Name: "Milk Tea", Quantity: 2, UnitPrice: 50},
		{ItemID: "b", Name: "Fries", Quantity: 1, UnitPrice: 30},
	}

	bill, err := Build("Ana", "09171234567", lines)
	require.NoError(t, err)

	assert.Equal(t, 130.00, bill.SubTotal)
	assert.Equal(t, 13.00, bill.Tax)
	assert.Equal(t, 143.00, bill.TotalAmount)
	assert.Equal(t, "Ana", bill.CustomerName)
	assert.Equal(t, "09171234567", bill.CustomerContact)
	assert.False(t, bill.CreatedAt.IsZero())
}

func TestBuildTaxRounding(t *testing.T) {
	tests := []struct {
		name      string
		price     float64
		wantSub   float64
		wantTax   float64
		wantTotal float64
	}{
		{"round up to cent", 9.99, 9.99, 1.00, 10.99},
		{"exact", 100.00, 100.00, 10.00, 110.00},
		{"round down to cent", 33.33, 33.33, 3.33, 36.66},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bill, err := Build("Ana", "0917", []models.CartLine{
				{ItemID: "a", Name: "Tea", Quantity: 1, UnitPrice: tc.price},
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantSub, bill.SubTotal)
			assert.Equal(t, tc.wantTax, bill.Tax)
			assert.Equal(t, tc.wantTotal, bill.TotalAmount)
		})
	}
}

func TestBuildEmptyCart(t *testing.T) {
	_, err := Build("Ana", "0917", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = Build("Ana", "0917", []models.CartLine{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildMissingCustomerInfo(t *testing.T) {
	lines := []models.CartLine{{ItemID: "a", Name: "Tea", Quantity: 1, UnitPrice: 50}}

	_, err := Build("", "0917", lines)
	assert.ErrorIs(t, err, ErrMissingCustomerInfo)

	_, err = Build("Ana", "   ", lines)
	assert.ErrorIs(t, err, ErrMissingCustomerInfo)
}

func TestBuildInvalidQuantity(t *testing.T) {
	_, err := Build("Ana", "0917", []models.CartLine{
		{ItemID: "a", Name: "Tea", Quantity: 0, UnitPrice: 50},
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestBuildNegativePrice(t *testing.T) {
	_, err := Build("Ana", "0917", []models.CartLine{
		{ItemID: "a", Name: "Tea", Quantity: 1, UnitPrice: 50},
		{ItemID: "b", Name: "Refund hack", Quantity: 1, UnitPrice: -50},
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestBuildSnapshotsLines(t *testing.T) {
	lines := []models.CartLine{{ItemID: "a", Name: "Tea", Quantity: 2, UnitPrice: 50}}

	bill, err := Build("Ana", "0917", lines)
	require.NoError(t, err)

	lines[0].UnitPrice = 999
	lines[0].Name = "changed"

	assert.Equal(t, "Tea", bill.Items[0].Name)
	assert.Equal(t, 50.00, bill.Items[0].UnitPrice)
	assert.Equal(t, 100.00, bill.SubTotal)
}

func TestBuildSubtotalMatchesCartTotal(t *testing.T) {
	cart := models.Cart{Lines: []models.CartLine{
		{ItemID: "a", Name: "Milk Tea", Quantity: 3, UnitPrice: 49.95},
		{ItemID: "b", Name: "Fries", Quantity: 2, UnitPrice: 30.10},
		{ItemID: "c", Name: "Cake", Quantity: 1, UnitPrice: 120.45},
	}}

	bill, err := Build("Ana", "0917", cart.Lines)
	require.NoError(t, err)
	assert.Equal(t, CartTotal(&cart), bill.SubTotal)
}
