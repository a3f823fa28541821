package order

import (
	"time"

	"github.com/polygondevindia-tech/board-build-boutique/internal/cart"
)

// MonthlyBucket is one bar of the admin sales chart.
type MonthlyBucket struct {
	Key     string  `json:"key"`   // YYYY-MM
	Label   string  `json:"label"` // "Jan 2026"
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// MonthlyBreakdown buckets orders into the trailing twelve calendar months
// ending at now, oldest first. Orders outside the window are ignored. Revenue
// is rounded to cents per bucket.
func MonthlyBreakdown(orders []Order, now time.Time) []MonthlyBucket {
	buckets := make([]MonthlyBucket, 0, 12)
	index := make(map[string]int, 12)

	for i := 11; i >= 0; i-- {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		key := d.Format("2006-01")
		index[key] = len(buckets)
		buckets = append(buckets, MonthlyBucket{
			Key:   key,
			Label: d.Format("Jan 2006"),
		})
	}

	for _, o := range orders {
		key := o.CreatedAt.UTC().Format("2006-01")
		i, ok := index[key]
		if !ok {
			continue
		}
		buckets[i].Orders++
		buckets[i].Revenue += o.Total
	}

	for i := range buckets {
		buckets[i].Revenue = cart.Round2(buckets[i].Revenue)
	}
	return buckets
}
