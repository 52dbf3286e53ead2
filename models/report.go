package models

// BucketStat names one calendar bucket (day "2006-01-02" or month "2006-01")
// together with its summed bill total.
type BucketStat struct {
	Key   string  `json:"key"`
	Total float64 `json:"total"`
}

// SalesSummary is derived data, recomputed on demand from the full bill
// collection and never stored. The same shape serves daily and monthly
// bucketing; only the bucket key format differs.
type SalesSummary struct {
	Buckets          map[string]float64 `json:"buckets"`
	TotalAmount      float64            `json:"totalAmount"`
	AveragePerBucket float64            `json:"averagePerBucket"`
	MaxBucket        BucketStat         `json:"maxBucket"`
	MinBucket        BucketStat         `json:"minBucket"`
}
