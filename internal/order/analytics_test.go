package order

import (
	"testing"
	"time"
)

func TestMonthlyBreakdownWindow(t *testing.T) {
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	orders := []Order{
		{ID: "1", Total: 10.50, CreatedAt: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "2", Total: 20.25, CreatedAt: time.Date(2026, time.August, 14, 23, 0, 0, 0, time.UTC)},
		{ID: "3", Total: 7.00, CreatedAt: time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC)},
		// outside the trailing 12 months, must be ignored
		{ID: "4", Total: 99.99, CreatedAt: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	buckets := MonthlyBreakdown(orders, now)

	if len(buckets) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(buckets))
	}
	if buckets[0].Key != "2025-09" {
		t.Fatalf("expected oldest bucket 2025-09, got %s", buckets[0].Key)
	}
	if buckets[11].Key != "2026-08" {
		t.Fatalf("expected newest bucket 2026-08, got %s", buckets[11].Key)
	}

	newest := buckets[11]
	if newest.Orders != 2 || newest.Revenue != 30.75 {
		t.Fatalf("unexpected newest bucket %+v", newest)
	}

	oldest := buckets[0]
	if oldest.Orders != 1 || oldest.Revenue != 7.00 {
		t.Fatalf("unexpected oldest bucket %+v", oldest)
	}

	for _, b := range buckets[1:11] {
		if b.Orders != 0 || b.Revenue != 0 {
			t.Fatalf("bucket %s should be empty: %+v", b.Key, b)
		}
	}
}

func TestMonthlyBreakdownLabels(t *testing.T) {
	now := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	buckets := MonthlyBreakdown(nil, now)

	if buckets[0].Label != "Feb 2025" {
		t.Fatalf("unexpected oldest label %s", buckets[0].Label)
	}
	if buckets[11].Label != "Jan 2026" {
		t.Fatalf("unexpected newest label %s", buckets[11].Label)
	}
}

func TestMonthlyBreakdownRoundsRevenue(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	orders := []Order{
		{Total: 0.115, CreatedAt: created},
		{Total: 0.115, CreatedAt: created},
	}

	buckets := MonthlyBreakdown(orders, now)
	if got := buckets[11].Revenue; got != 0.23 {
		t.Fatalf("expected per-bucket rounding to 0.23, got %v", got)
	}
}
