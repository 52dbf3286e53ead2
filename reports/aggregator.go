// Package reports rolls bills up into calendar-day and calendar-month sales
// summaries. Everything here is a pure computation over a snapshot of the
// bill collection: no state is held between calls, and running an
// aggregation twice on the same input yields identical results. A snapshot
// taken while new bills are being written may miss the newest bill; that is
// acceptable for reporting.
package reports

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"teapos/models"
)

// ErrNoData signals an empty bill collection. Callers surface it as
// "no sales data available" instead of producing a divide-by-zero average.
var ErrNoData = errors.New("no sales data available")

const (
	dayKeyLayout   = "2006-01-02"
	monthKeyLayout = "2006-01"
)

// AggregateDaily buckets bill totals by calendar day.
func AggregateDaily(bills []models.Bill) (models.SalesSummary, error) {
	return aggregate(bills, dayKeyLayout)
}

// AggregateMonthly buckets bill totals by calendar month.
func AggregateMonthly(bills []models.Bill) (models.SalesSummary, error) {
	return aggregate(bills, monthKeyLayout)
}

func aggregate(bills []models.Bill, keyLayout string) (models.SalesSummary, error) {
	if len(bills) == 0 {
		return models.SalesSummary{}, ErrNoData
	}

	sums := make(map[string]decimal.Decimal)
	for _, bill := range bills {
		key := bill.CreatedAt.Format(keyLayout)
		sums[key] = sums[key].Add(decimal.NewFromFloat(bill.TotalAmount))
	}

	// Ties on max/min resolve to the first bucket in ascending key order.
	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	buckets := make(map[string]float64, len(sums))
	total := decimal.Zero
	var maxStat, minStat models.BucketStat
	for i, key := range keys {
		amount := sums[key].Round(2)
		value, _ := amount.Float64()
		buckets[key] = value
		total = total.Add(amount)
		if i == 0 || value > maxStat.Total {
			maxStat = models.BucketStat{Key: key, Total: value}
		}
		if i == 0 || value < minStat.Total {
			minStat = models.BucketStat{Key: key, Total: value}
		}
	}

	average := total.Div(decimal.NewFromInt(int64(len(keys)))).Round(2)
	totalF, _ := total.Float64()
	averageF, _ := average.Float64()

	return models.SalesSummary{
		Buckets:          buckets,
		TotalAmount:      totalF,
		AveragePerBucket: averageF,
		MaxBucket:        maxStat,
		MinBucket:        minStat,
	}, nil
}
