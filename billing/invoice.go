package billing

import (
	"teapos/models"
)

// invoiceFooter is the legal text printed at the bottom of every invoice.
// The 10% figure must stay in sync with TaxRate.
const invoiceFooter = "Thank you for your order! 10% GST applied on the total amount. Please note that this is a non-refundable amount."

// Render projects a bill into a display/print-ready invoice. It is pure and
// deterministic: the same bill always yields the same view, and every amount
// is formatted with the same rounding the builder used.
func Render(bill models.Bill, shop models.ShopInfo) models.InvoiceView {
	lines := make([]models.InvoiceLine, 0, len(bill.Items))
	for _, item := range bill.Items {
		lt, _ := lineTotal(item.Quantity, item.UnitPrice).Float64()
		lines = append(lines, models.InvoiceLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: FormatAmount(item.UnitPrice),
			Total:     FormatAmount(lt),
		})
	}

	return models.InvoiceView{
		Shop:            shop,
		CustomerName:    bill.CustomerName,
		CustomerContact: bill.CustomerContact,
		Date:            bill.CreatedAt.Format("2006-01-02"),
		Lines:           lines,
		SubTotal:        FormatAmount(bill.SubTotal),
		Tax:             FormatAmount(bill.Tax),
		Total:           FormatAmount(bill.TotalAmount),
		FooterNote:      invoiceFooter,
	}
}
