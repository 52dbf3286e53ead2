package handlers

import (
	"context"
	"net/http"
	"time"

	"teapos/billing"
	"teapos/config"
	"teapos/controllers"
	"teapos/middleware"
	"teapos/models"
	"teapos/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func customerID(c *gin.Context) (string, bool) {
	id, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id.(string), true
}

// loadCart returns the stored cart for the customer, or a fresh empty
// one when none exists yet.
func loadCart(ctx context.Context, customerID string) (models.Cart, error) {
	var cart models.Cart
	err := config.CartCollection.FindOne(ctx, bson.M{"customer_id": customerID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return models.Cart{
			ID:         primitive.NewObjectID(),
			CustomerID: customerID,
			Lines:      []models.CartLine{},
		}, nil
	}
	if err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func saveCart(ctx context.Context, cart models.Cart) error {
	cart.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := config.CartCollection.ReplaceOne(ctx, bson.M{"customer_id": cart.CustomerID}, cart, opts)
	return err
}

func GetCart(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart, err := loadCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  cart,
		"total": billing.CartTotal(&cart),
	})
}

// AddCartItem adds an item to the cart, snapshotting the current price.
// A missing quantity defaults to 1; adding an existing item increments
// its line.
func AddCartItem(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var input models.AddCartItemInput
	if err := utils.BindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	itemID, err := primitive.ObjectIDFromHex(input.ItemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var item models.Item
	err = config.ItemCollection.FindOne(ctx, bson.M{"_id": itemID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve item"})
		}
		return
	}

	cart, err := loadCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	if err := billing.AddItem(&cart, item, input.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  cart,
		"total": billing.CartTotal(&cart),
	})
}

func SetCartItemQuantity(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var input models.SetCartQuantityInput
	if err := utils.BindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart, err := loadCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	if err := billing.SetQuantity(&cart, c.Param("itemId"), input.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  cart,
		"total": billing.CartTotal(&cart),
	})
}

func RemoveCartItem(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart, err := loadCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	billing.RemoveItem(&cart, c.Param("itemId"))

	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart":  cart,
		"total": billing.CartTotal(&cart),
	})
}

func ClearCart(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart, err := loadCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	billing.Clear(&cart)

	if err := saveCart(ctx, cart); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

func insertBill(ctx context.Context, bill models.Bill) error {
	_, err := config.BillCollection.InsertOne(ctx, bill)
	return err
}

// checkoutCart builds a bill from the cart's lines and persists it through
// insert. The cart is cleared only after the insert succeeds, so a storage
// failure leaves it intact for retry.
func checkoutCart(ctx context.Context, cart *models.Cart, customerName, customerContact string, insert func(context.Context, models.Bill) error) (models.Bill, error) {
	bill, err := billing.Build(customerName, customerContact, cart.Lines)
	if err != nil {
		return models.Bill{}, err
	}

	bill.ID = primitive.NewObjectID()
	bill.ViewToken = uuid.NewString()

	if err := insert(ctx, bill); err != nil {
		return models.Bill{}, err
	}

	billing.Clear(cart)
	return bill, nil
}

// Checkout builds a bill from the stored cart and persists it.
func Checkout(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var input struct {
		CustomerName    string `json:"customerName"`
		CustomerContact string `json:"customerContact"`
	}
	if err := utils.BindStrict(c, &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cart, err := loadCart(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cart"})
		return
	}

	bill, err := checkoutCart(ctx, &cart, input.CustomerName, input.CustomerContact, insertBill)
	if err != nil {
		if billing.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save bill"})
		}
		return
	}
	middleware.BillsCreatedTotal.Inc()

	if err := saveCart(ctx, cart); err != nil {
		// The bill is already safe; an unclean cart is the lesser problem.
		c.JSON(http.StatusCreated, gin.H{"bill": bill, "warning": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bill":    bill,
		"invoice": billing.Render(bill, controllers.ShopInfo()),
	})
}
