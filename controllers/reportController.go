package controllers

import (
	"context"
	"net/http"
	"time"

	"teapos/config"
	"teapos/models"
	"teapos/reports"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// loadBills fetches the aggregation snapshot. A bill written while the
// cursor is open may be missed; reporting tolerates that.
func loadBills(ctx context.Context) ([]models.Bill, error) {
	cursor, err := config.BillCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bills []models.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

func DailySalesReport(c *gin.Context) {
	salesReport(c, reports.AggregateDaily)
}

func MonthlySalesReport(c *gin.Context) {
	salesReport(c, reports.AggregateMonthly)
}

func salesReport(c *gin.Context, aggregate func([]models.Bill) (models.SalesSummary, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	bills, err := loadBills(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bills"})
		return
	}

	summary, err := aggregate(bills)
	if err == reports.ErrNoData {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate sales"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
