package models

// ShopInfo is the business identity printed on every invoice header.
type ShopInfo struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// InvoiceLine is a display-ready bill line; amounts are pre-formatted
// currency strings ("₱50.00").
type InvoiceLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Total     string `json:"total"`
}

// InvoiceView is a pure projection of a Bill for display or printing. All
// amounts come from the already-validated bill; no recomputation happens
// beyond formatting.
type InvoiceView struct {
	Shop            ShopInfo      `json:"shop"`
	CustomerName    string        `json:"customerName"`
	CustomerContact string        `json:"customerContact"`
	Date            string        `json:"date"`
	Lines           []InvoiceLine `json:"lines"`
	SubTotal        string        `json:"subTotal"`
	Tax             string        `json:"tax"`
	Total           string        `json:"total"`
	FooterNote      string        `json:"footerNote"`
}
