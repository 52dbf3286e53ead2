package billing

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"teapos/models"
)

// TaxRate is the fixed GST fraction applied to every bill's subtotal. The
// invoice footer promises 10%, so this is a constant rather than a per-bill
// field.
const TaxRate = 0.10

// Build turns a cart's lines into a Bill. It validates the inputs, computes
// subtotal, tax and total with decimal arithmetic, and deep-copies the lines
// into snapshots so later item edits never change the issued invoice.
// Persisting the bill is the caller's job.
func Build(customerName, customerContact string, lines []models.CartLine) (models.Bill, error) {
	if len(lines) == 0 {
		return models.Bill{}, ErrEmptyCart
	}
	if strings.TrimSpace(customerName) == "" || strings.TrimSpace(customerContact) == "" {
		return models.Bill{}, ErrMissingCustomerInfo
	}

	items := make([]models.BillItem, 0, len(lines))
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity < 1 {
			return models.Bill{}, ErrInvalidQuantity
		}
		if line.UnitPrice < 0 {
			return models.Bill{}, ErrInvalidPrice
		}
		subtotal = subtotal.Add(lineTotal(line.Quantity, line.UnitPrice))
		items = append(items, models.BillItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	subtotal = round2(subtotal)

	tax := round2(subtotal.Mul(decimal.NewFromFloat(TaxRate)))
	total := subtotal.Add(tax)

	subF, _ := subtotal.Float64()
	taxF, _ := tax.Float64()
	totalF, _ := total.Float64()

	return models.Bill{
		CustomerName:    customerName,
		CustomerContact: customerContact,
		Items:           items,
		SubTotal:        subF,
		Tax:             taxF,
		TotalAmount:     totalF,
		CreatedAt:       time.Now(),
	}, nil
}
