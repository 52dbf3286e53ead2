package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"teapos/config"
	"teapos/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetAllItems lists the catalog, optionally filtered by ?category=<id>.
func GetAllItems(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if categoryID := c.Query("category"); categoryID != "" {
		filter["category_id"] = categoryID
	}

	cursor, err := config.ItemCollection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve items"})
		return
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func GetItem(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var item models.Item
	err = config.ItemCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateItem accepts a multipart form: name, unitPrice, size, pieces,
// categoryId and an optional "image" file.
func CreateItem(c *gin.Context) {
	item := models.Item{
		ID:         primitive.NewObjectID(),
		Name:       c.PostForm("name"),
		Size:       c.PostForm("size"),
		CategoryID: c.PostForm("categoryId"),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if item.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("unitPrice"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unitPrice must be a non-negative number"})
		return
	}
	item.UnitPrice = price

	if pieces := c.PostForm("pieces"); pieces != "" {
		item.Pieces, err = strconv.Atoi(pieces)
		if err != nil || item.Pieces < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pieces must be a non-negative integer"})
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Items reference their category by immutable id.
	catID, err := primitive.ObjectIDFromHex(item.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}
	if err := config.CategoryCollection.FindOne(ctx, bson.M{"_id": catID}).Err(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
		return
	}

	file, err := c.FormFile("image")
	if err == nil {
		imageURL, previewURL, err := SavePhotoToS3(file, "items", item.ID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		item.ImageURL = imageURL
		item.ImagePreviewURL = previewURL
	}

	if _, err := config.ItemCollection.InsertOne(ctx, item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// EditItem updates the live item only. Bill lines carry their own price
// snapshots, so past invoices are unaffected by a price change here.
func EditItem(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Item
	if err := config.ItemCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	updateFields := bson.M{"updated_at": time.Now()}
	if name := c.PostForm("name"); name != "" {
		updateFields["name"] = name
	}
	if size := c.PostForm("size"); size != "" {
		updateFields["size"] = size
	}
	if priceStr := c.PostForm("unitPrice"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unitPrice must be a non-negative number"})
			return
		}
		updateFields["unit_price"] = price
	}
	if piecesStr := c.PostForm("pieces"); piecesStr != "" {
		pieces, err := strconv.Atoi(piecesStr)
		if err != nil || pieces < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pieces must be a non-negative integer"})
			return
		}
		updateFields["pieces"] = pieces
	}
	if categoryID := c.PostForm("categoryId"); categoryID != "" {
		catID, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}
		if err := config.CategoryCollection.FindOne(ctx, bson.M{"_id": catID}).Err(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
			return
		}
		updateFields["category_id"] = categoryID
	}

	file, err := c.FormFile("image")
	if err == nil {
		RemovePhotoFromS3(existing.ImageURL)
		RemovePhotoFromS3(existing.ImagePreviewURL)

		imageURL, previewURL, err := SavePhotoToS3(file, "items", objID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		updateFields["image_url"] = imageURL
		updateFields["image_preview_url"] = previewURL
	}

	_, err = config.ItemCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": updateFields})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item updated successfully"})
}

func DeleteItem(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Item
	if err := config.ItemCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if _, err := config.ItemCollection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	RemovePhotoFromS3(existing.ImageURL)
	RemovePhotoFromS3(existing.ImagePreviewURL)

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
