package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teapos/models"
)

func TestRenderInvoice(t *testing.T) {
	bill, err := Build("Ana", "09171234567", []models.CartLine{
		{ItemID: "a", Name: "Milk Tea", Quantity: 2, UnitPrice: 50},
		{ItemID: "b", Name: "Fries", Quantity: 1, UnitPrice: 30},
	})
	require.NoError(t, err)

	shop := models.ShopInfo{Name: "TeaLerin", Contact: "0917", Address: "Manila"}
	view := Render(bill, shop)

	assert.Equal(t, shop, view.Shop)
	assert.Equal(t, "Ana", view.CustomerName)
	assert.Equal(t, "09171234567", view.CustomerContact)
	assert.Equal(t, bill.CreatedAt.Format("2006-01-02"), view.Date)

	require.Len(t, view.Lines, 2)
	assert.Equal(t, "Milk Tea", view.Lines[0].Name)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, "₱50.00", view.Lines[0].UnitPrice)
	assert.Equal(t, "₱100.00", view.Lines[0].Total)
	assert.Equal(t, "Fries", view.Lines[1].Name)
	assert.Equal(t, "₱30.00", view.Lines[1].Total)

	assert.Equal(t, "₱130.00", view.SubTotal)
	assert.Equal(t, "₱13.00", view.Tax)
	assert.Equal(t, "₱143.00", view.Total)
	assert.Contains(t, view.FooterNote, "10% GST")
}

func TestRenderIsDeterministic(t *testing.T) {
	bill, err := Build("Ana", "0917", []models.CartLine{
		{ItemID: "a", Name: "Milk Tea", Quantity: 3, UnitPrice: 49.95},
	})
	require.NoError(t, err)

	shop := models.ShopInfo{Name: "TeaLerin"}
	assert.Equal(t, Render(bill, shop), Render(bill, shop))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₱0.00", FormatAmount(0))
	assert.Equal(t, "₱143.00", FormatAmount(143))
	assert.Equal(t, "₱9.99", FormatAmount(9.99))
	assert.Equal(t, "₱1234.50", FormatAmount(1234.5))
}
