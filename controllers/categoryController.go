package controllers

import (
	"context"
	"net/http"
	"time"

	"teapos/config"
	"teapos/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func GetAllCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.CategoryCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve categories"})
		return
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

func CreateCategory(c *gin.Context) {
	category := models.Category{
		ID:        primitive.NewObjectID(),
		Name:      c.PostForm("name"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := config.CategoryCollection.CountDocuments(ctx, bson.M{"name": category.Name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
		return
	}

	file, err := c.FormFile("image")
	if err == nil {
		imageURL, previewURL, err := SavePhotoToS3(file, "categories", category.ID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		category.ImageURL = imageURL
		category.ImagePreviewURL = previewURL
	}

	if _, err := config.CategoryCollection.InsertOne(ctx, category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func EditCategory(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Category
	if err := config.CategoryCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	updateFields := bson.M{"updated_at": time.Now()}
	if name := c.PostForm("name"); name != "" {
		updateFields["name"] = name
	}

	file, err := c.FormFile("image")
	if err == nil {
		RemovePhotoFromS3(existing.ImageURL)
		RemovePhotoFromS3(existing.ImagePreviewURL)

		imageURL, previewURL, err := SavePhotoToS3(file, "categories", objID.Hex())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		updateFields["image_url"] = imageURL
		updateFields["image_preview_url"] = previewURL
	}

	_, err = config.CategoryCollection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": updateFields})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory refuses while items still reference the category.
func DeleteCategory(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var existing models.Category
	if err := config.CategoryCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	inUse, err := config.ItemCollection.CountDocuments(ctx, bson.M{"category_id": objID.Hex()})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category usage"})
		return
	}
	if inUse > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Category still has items"})
		return
	}

	if _, err := config.CategoryCollection.DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	RemovePhotoFromS3(existing.ImageURL)
	RemovePhotoFromS3(existing.ImagePreviewURL)

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
