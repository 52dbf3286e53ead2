package controllers

import (
	"context"
	"net/http"
	"os"
	"time"

	"teapos/billing"
	"teapos/config"
	"teapos/middleware"
	"teapos/models"
	"teapos/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ShopInfo returns the business identity printed on invoice headers.
func ShopInfo() models.ShopInfo {
	info := models.ShopInfo{
		Name:    os.Getenv("SHOP_NAME"),
		Contact: os.Getenv("SHOP_CONTACT"),
		Address: os.Getenv("SHOP_ADDRESS"),
	}
	if info.Name == "" {
		info.Name = "TeaLerin"
	}
	return info
}

// CreateBill handles POST /api/bills, the counter-side checkout. The client
// sends its cart lines but every amount is recomputed here; a client-supplied
// total is never trusted.
func CreateBill(c *gin.Context) {
	var input models.CreateBillInput
	if err := utils.BindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]models.CartLine, 0, len(input.CartItems))
	for _, item := range input.CartItems {
		lines = append(lines, models.CartLine{
			ItemID:    item.ItemID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	bill, err := billing.Build(input.CustomerName, input.CustomerContact, lines)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	bill.ViewToken = uuid.NewString()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := config.BillCollection.InsertOne(ctx, bill)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bill"})
		return
	}
	bill.ID = result.InsertedID.(primitive.ObjectID)
	middleware.BillsCreatedTotal.Inc()

	c.JSON(http.StatusCreated, bill)
}

// GetAllBills returns every bill; this is the aggregator's input feed and
// the invoice list page.
func GetAllBills(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.BillCollection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bills"})
		return
	}
	defer cursor.Close(ctx)

	bills := []models.Bill{}
	if err := cursor.All(ctx, &bills); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode bills"})
		return
	}

	c.JSON(http.StatusOK, bills)
}

func GetBillByID(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var bill models.Bill
	err = config.BillCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		}
		return
	}

	c.JSON(http.StatusOK, bill)
}

// GetInvoice renders one bill as a printable invoice view.
func GetInvoice(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bill ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var bill models.Bill
	err = config.BillCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		}
		return
	}

	c.JSON(http.StatusOK, billing.Render(bill, ShopInfo()))
}

// GetInvoiceByToken serves a public invoice link; the token is the only
// credential, so nothing but the rendered view is exposed.
func GetInvoiceByToken(c *gin.Context) {
	token := c.Param("token")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var bill models.Bill
	err := config.BillCollection.FindOne(ctx, bson.M{"view_token": token}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, billing.Render(bill, ShopInfo()))
}
