package billing

import (
	"github.com/shopspring/decimal"

	"teapos/models"
)

// AddItem puts an item into the cart. If a line for the item already exists
// its quantity is incremented; otherwise a new line is appended with the
// item's current unit price snapshotted. Calling it repeatedly for the same
// item is not an error.
func AddItem(cart *models.Cart, item models.Item, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	id := item.ID.Hex()
	for i := range cart.Lines {
		if cart.Lines[i].ItemID == id {
			cart.Lines[i].Quantity += quantity
			return nil
		}
	}
	cart.Lines = append(cart.Lines, models.CartLine{
		ItemID:    id,
		Name:      item.Name,
		Quantity:  quantity,
		UnitPrice: item.UnitPrice,
	})
	return nil
}

// RemoveItem deletes the matching line. Removing an absent item is a no-op,
// not an error.
func RemoveItem(cart *models.Cart, itemID string) {
	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line. Zero and negative
// quantities are rejected; callers should use RemoveItem instead.
func SetQuantity(cart *models.Cart, itemID string, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	for i := range cart.Lines {
		if cart.Lines[i].ItemID == itemID {
			cart.Lines[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Clear empties the cart. Called after a bill has been persisted
// successfully, never on a persistence failure.
func Clear(cart *models.Cart) {
	cart.Lines = nil
}

// CartTotal sums quantity × unit price over all lines. Pure; it equals the
// subtotal Build computes for the same lines.
func CartTotal(cart *models.Cart) float64 {
	sum := decimal.Zero
	for _, line := range cart.Lines {
		sum = sum.Add(lineTotal(line.Quantity, line.UnitPrice))
	}
	total, _ := round2(sum).Float64()
	return total
}
