package order

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/polygondevindia-tech/board-build-boutique/internal/cart"
)

var demoProductNames = []string{
	"Sensor Module",
	"Arduino Board",
	"Custom PCB",
	"Connector Kit",
	"Power Regulator",
	"Microcontroller",
	"LED Strip",
	"Resistor Pack",
}

// SeedDemo inserts n randomized demo orders spread over the trailing twelve
// months, so the admin chart has something to show on a fresh install. Each
// order carries one to three items with random quantities and prices.
func SeedDemo(ctx context.Context, repo Repository, n int, userID, email string, now time.Time, rng *rand.Rand) (int, error) {
	start := now.AddDate(0, -11, 0)
	window := now.Sub(start)

	for i := 0; i < n; i++ {
		createdAt := start.Add(time.Duration(rng.Int63n(int64(window))))

		itemCount := 1 + rng.Intn(3)
		var items []Item
		var total float64
		for j := 0; j < itemCount; j++ {
			unitPrice := cart.Round2(5 + rng.Float64()*200)
			quantity := 1 + rng.Intn(3)
			lineTotal := cart.Round2(unitPrice * float64(quantity))
			items = append(items, Item{
				Name:      demoProductNames[rng.Intn(len(demoProductNames))],
				Quantity:  quantity,
				UnitPrice: unitPrice,
				LineTotal: lineTotal,
			})
			total += lineTotal
		}

		o := &Order{
			UserID:        userID,
			Status:        Statuses[rng.Intn(len(Statuses))],
			Total:         cart.Round2(total),
			Currency:      "USD",
			CustomerEmail: email,
			Items:         items,
			CreatedAt:     createdAt.UTC(),
		}
		if err := repo.Create(ctx, o); err != nil {
			return i, fmt.Errorf("seed order %d: %w", i+1, err)
		}
	}

	return n, nil
}
