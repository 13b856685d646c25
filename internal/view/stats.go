package view

import (
	"sort"
	"time"

	"github.com/paysprint/billflow/internal/models"
)

// DashboardStats aggregates bill amounts by effective status.
type DashboardStats struct {
	// Total is the sum of every bill's amount regardless of status.
	Total float64

	Pending   float64
	Approved  float64
	Paid      float64
	Overdue   float64
	Scheduled float64
	Rejected  float64

	// Outstanding is Total minus Paid.
	Outstanding float64

	// BillCount is the number of bills in the snapshot.
	BillCount int
}

// AggregateTotals sums amounts grouped by effective status.
func AggregateTotals(bills []models.Bill, now time.Time) DashboardStats {
	var stats DashboardStats
	for _, b := range bills {
		stats.Total += b.Amount
		stats.BillCount++
		switch EffectiveStatus(b, now) {
		case models.StatusPending:
			stats.Pending += b.Amount
		case models.StatusApproved:
			stats.Approved += b.Amount
		case models.StatusPaid:
			stats.Paid += b.Amount
		case models.StatusOverdue:
			stats.Overdue += b.Amount
		case models.StatusScheduled:
			stats.Scheduled += b.Amount
		case models.StatusRejected:
			stats.Rejected += b.Amount
		}
	}
	stats.Outstanding = stats.Total - stats.Paid
	return stats
}

// CategoryTotal is one category's summed amount.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// CategoryBreakdown sums amounts per category, keeping only categories
// with a non-zero total, sorted descending by amount. Categories with
// equal amounts keep the fixed category order.
func CategoryBreakdown(bills []models.Bill, now time.Time) []CategoryTotal {
	sums := make(map[string]float64, len(models.Categories))
	for _, b := range bills {
		sums[b.Category] += b.Amount
	}

	out := make([]CategoryTotal, 0, len(sums))
	for _, cat := range models.Categories {
		if sums[cat] > 0 {
			out = append(out, CategoryTotal{Category: cat, Amount: sums[cat]})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out
}

// MonthBucket is one calendar month's paid vs unpaid amounts.
type MonthBucket struct {
	// Month is the short month name of the due date ("Jan", "Feb", ...).
	// The same month in different years shares a bucket.
	Month string

	// Paid is the summed amount of bills whose effective status is paid.
	Paid float64

	// Pending is the summed amount of everything else.
	Pending float64
}

// MonthlyTrend groups bills by the calendar month of their due date,
// splitting each bucket into paid and non-paid amounts by effective
// status. Buckets appear in order of first appearance in the input.
func MonthlyTrend(bills []models.Bill, now time.Time) []MonthBucket {
	index := make(map[string]int)
	var out []MonthBucket

	for _, b := range bills {
		month := b.DueDate.Format("Jan")
		i, ok := index[month]
		if !ok {
			i = len(out)
			index[month] = i
			out = append(out, MonthBucket{Month: month})
		}
		if EffectiveStatus(b, now) == models.StatusPaid {
			out[i].Paid += b.Amount
		} else {
			out[i].Pending += b.Amount
		}
	}
	return out
}
