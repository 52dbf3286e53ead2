package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teapos/models"
)

func billOn(day string, total float64) models.Bill {
	created, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return models.Bill{TotalAmount: total, CreatedAt: created}
}

func TestAggregateDaily(t *testing.T) {
	bills := []models.Bill{
		billOn("2024-01-01", 100),
		billOn("2024-01-01", 50),
		billOn("2024-01-02", 200),
	}

	summary, err := AggregateDaily(bills)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"2024-01-01": 150,
		"2024-01-02": 200,
	}, summary.Buckets)
	assert.Equal(t, 350.00, summary.TotalAmount)
	assert.Equal(t, 175.00, summary.AveragePerBucket)
	assert.Equal(t, models.BucketStat{Key: "2024-01-02", Total: 200}, summary.MaxBucket)
	assert.Equal(t, models.BucketStat{Key: "2024-01-01", Total: 150}, summary.MinBucket)
}

func TestAggregateMonthly(t *testing.T) {
	bills := []models.Bill{
		billOn("2024-01-05", 100),
		billOn("2024-01-20", 150),
		billOn("2024-02-01", 300),
	}

	summary, err := AggregateMonthly(bills)
	require.NoError(t, err)

	assert.Equal(t, map[string]float64{
		"2024-01": 250,
		"2024-02": 300,
	}, summary.Buckets)
	assert.Equal(t, 550.00, summary.TotalAmount)
	assert.Equal(t, 275.00, summary.AveragePerBucket)
	assert.Equal(t, "2024-02", summary.MaxBucket.Key)
	assert.Equal(t, "2024-01", summary.MinBucket.Key)
}

func TestAggregateNoData(t *testing.T) {
	_, err := AggregateDaily(nil)
	assert.ErrorIs(t, err, ErrNoData)

	_, err = AggregateMonthly([]models.Bill{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAggregateIsIdempotent(t *testing.T) {
	bills := []models.Bill{
		billOn("2024-01-01", 99.99),
		billOn("2024-01-02", 33.33),
		billOn("2024-01-02", 66.67),
	}

	first, err := AggregateDaily(bills)
	require.NoError(t, err)
	second, err := AggregateDaily(bills)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregateTiesResolveToEarliestBucket(t *testing.T) {
	bills := []models.Bill{
		billOn("2024-01-01", 100),
		billOn("2024-01-02", 100),
	}

	summary, err := AggregateDaily(bills)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", summary.MaxBucket.Key)
	assert.Equal(t, "2024-01-01", summary.MinBucket.Key)
}

func TestAggregateRoundsBucketTotals(t *testing.T) {
	bills := []models.Bill{
		billOn("2024-01-01", 10.005),
		billOn("2024-01-01", 10.005),
	}

	summary, err := AggregateDaily(bills)
	require.NoError(t, err)

	assert.Equal(t, 20.01, summary.Buckets["2024-01-01"])
}
