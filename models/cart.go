package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is one (item, quantity, price snapshot) entry. The unit price is
// captured when the item is first added and does not follow later item edits.
type CartLine struct {
	ItemID    string  `bson:"item_id" json:"itemId"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
}

// Cart is the customer's in-progress selection, persisted per customer so it
// survives page reloads. Lines are ordered and keyed by item id; there is
// never more than one line per item.
type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID string             `bson:"customer_id" json:"customerId"`
	Lines      []CartLine         `bson:"lines" json:"lines"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

type AddCartItemInput struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type SetCartQuantityInput struct {
	Quantity int `json:"quantity"`
}
