package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillItem is a snapshot of one cart line at the moment the bill was built.
// It carries copies of the item name and unit price, never a reference to the
// live item, so later catalog edits cannot alter an issued invoice.
type BillItem struct {
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"price"`
}

// Bill is an append-only invoice record. There is no update route; once
// written it never changes.
type Bill struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName    string             `bson:"customer_name" json:"customerName"`
	CustomerContact string             `bson:"customer_contact" json:"customerContact"`
	Items           []BillItem         `bson:"items" json:"cartItems"`
	SubTotal        float64            `bson:"subtotal" json:"subTotal"`
	Tax             float64            `bson:"tax" json:"tax"`
	TotalAmount     float64            `bson:"total_amount" json:"totalAmount"`
	ViewToken       string             `bson:"view_token" json:"viewToken,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}

// CreateBillInput is the POST /api/bills body. Totals are recomputed
// server-side; any client-computed amounts are ignored.
type CreateBillInput struct {
	CustomerName    string          `json:"customerName"`
	CustomerContact string          `json:"customerContact"`
	CartItems       []CartLineInput `json:"cartItems"`
}

type CartLineInput struct {
	ItemID   string  `json:"itemId,omitempty"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
