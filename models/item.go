package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Item struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	UnitPrice       float64            `bson:"unit_price" json:"unitPrice"`
	Size            string             `bson:"size,omitempty" json:"size,omitempty"`
	Pieces          int                `bson:"pieces,omitempty" json:"pieces,omitempty"`
	CategoryID      string             `bson:"category_id" json:"categoryId"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image,omitempty"`
	ImagePreviewURL string             `bson:"image_preview_url,omitempty" json:"imagePreview,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

// UpdateItem carries the editable subset of Item. The unit price may only
// change the live item; historical bill lines keep their own snapshot.
type UpdateItem struct {
	Name       string  `json:"name,omitempty"`
	UnitPrice  float64 `json:"unitPrice,omitempty"`
	Size       string  `json:"size,omitempty"`
	Pieces     int     `json:"pieces,omitempty"`
	CategoryID string  `json:"categoryId,omitempty"`
}

// Category is referenced by items via its immutable id; the name is
// display-only metadata.
type Category struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image,omitempty"`
	ImagePreviewURL string             `bson:"image_preview_url,omitempty" json:"imagePreview,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}

type UpdateCategory struct {
	Name string `json:"name,omitempty"`
}
