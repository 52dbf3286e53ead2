package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"teapos/billing"
	"teapos/config"
	"teapos/models"
	"teapos/reports"
)

// SendDailyReport is the nightly scheduler job: it aggregates yesterday's
// bills and emails the summary to REPORT_EMAIL. Failures are logged and the
// job runs again the next night; it never takes the server down.
func SendDailyReport() {
	log.Println("Starting daily sales report job")

	recipient := os.Getenv("REPORT_EMAIL")
	if recipient == "" {
		log.Println("REPORT_EMAIL is not set, skipping daily sales report")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	end := start.AddDate(0, 0, 1)

	cursor, err := config.BillCollection.Find(ctx, bson.M{
		"created_at": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		log.Printf("Daily report: failed to load bills: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var bills []models.Bill
	if err := cursor.All(ctx, &bills); err != nil {
		log.Printf("Daily report: failed to decode bills: %v", err)
		return
	}

	summary, err := reports.AggregateDaily(bills)
	if err == reports.ErrNoData {
		log.Printf("Daily report: no sales on %s, nothing to send", start.Format("2006-01-02"))
		return
	}
	if err != nil {
		log.Printf("Daily report: aggregation failed: %v", err)
		return
	}

	subject := fmt.Sprintf("Sales report for %s", start.Format("2006-01-02"))
	if err := SendEmail(recipient, subject, formatDailyReport(start, bills, summary)); err != nil {
		log.Printf("Daily report: failed to send email: %v", err)
		return
	}

	log.Printf("Daily report for %s sent to %s (%d bills)", start.Format("2006-01-02"), recipient, len(bills))
}

func formatDailyReport(day time.Time, bills []models.Bill, summary models.SalesSummary) string {
	body := fmt.Sprintf("Sales for %s\n\nBills issued: %d\nTotal sales: %s\n\n",
		day.Format("2006-01-02"), len(bills), billing.FormatAmount(summary.TotalAmount))

	keys := make([]string, 0, len(summary.Buckets))
	for key := range summary.Buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		body += fmt.Sprintf("%s: %s\n", key, billing.FormatAmount(summary.Buckets[key]))
	}
	return body
}
