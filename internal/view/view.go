// Package view derives read-only projections from a bill snapshot:
// filtered and sorted lists, aggregate totals, category and monthly
// breakdowns, and due-date labels. Every function is pure — the current
// time arrives as a parameter, never from a global clock.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/paysprint/billflow/internal/models"
)

// EffectiveStatus is the status used for display and filtering. A pending,
// approved, or scheduled bill strictly past its due date is projected as
// overdue; paid and rejected bills are exempt regardless of due date. The
// stored status is never modified.
func EffectiveStatus(bill models.Bill, now time.Time) models.Status {
	if bill.Status.Terminal() {
		return bill.Status
	}
	if startOfDay(bill.DueDate).Before(startOfDay(now)) {
		return models.StatusOverdue
	}
	return bill.Status
}

// SortField selects the sort key for FilterAndSort.
type SortField string

const (
	SortByDueDate      SortField = "dueDate"
	SortByAmount       SortField = "amount"
	SortByVendor       SortField = "vendor"
	SortByUploadedDate SortField = "uploadedDate"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Query holds the filter and sort parameters for FilterAndSort. Zero
// values mean "no filter": empty Search, Status, and Category match
// everything, and zero DateFrom/DateTo leave the due-date range unbounded.
type Query struct {
	Search        string
	Status        models.Status
	Category      string
	DateFrom      time.Time
	DateTo        time.Time
	SortField     SortField
	SortDirection SortDirection
}

// FilterAndSort produces the visible ordered sequence. Search matches
// case-insensitively against vendor, invoice number, and category; all
// filters are AND-combined; the status filter compares against the
// effective status. Ties keep the input order, so identical inputs always
// yield the identical sequence.
func FilterAndSort(bills []models.Bill, q Query, now time.Time) []models.Bill {
	result := make([]models.Bill, 0, len(bills))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	for _, b := range bills {
		if search != "" &&
			!strings.Contains(strings.ToLower(b.Vendor), search) &&
			!strings.Contains(strings.ToLower(b.InvoiceNumber), search) &&
			!strings.Contains(strings.ToLower(b.Category), search) {
			continue
		}
		if q.Status != "" && EffectiveStatus(b, now) != q.Status {
			continue
		}
		if q.Category != "" && b.Category != q.Category {
			continue
		}
		if !q.DateFrom.IsZero() && startOfDay(b.DueDate).Before(startOfDay(q.DateFrom)) {
			continue
		}
		if !q.DateTo.IsZero() && startOfDay(b.DueDate).After(startOfDay(q.DateTo)) {
			continue
		}
		result = append(result, b)
	}

	field := q.SortField
	if field == "" {
		field = SortByDueDate
	}
	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		var less bool
		switch field {
		case SortByAmount:
			less = a.Amount < b.Amount
		case SortByVendor:
			less = a.Vendor < b.Vendor
		case SortByUploadedDate:
			less = a.UploadedDate.Before(b.UploadedDate)
		default:
			less = a.DueDate.Before(b.DueDate)
		}
		if q.SortDirection == SortDesc {
			return !less && !equalOn(field, a, b)
		}
		return less
	})

	return result
}

// equalOn reports whether two bills compare equal on the sort field, so a
// descending sort stays stable on ties.
func equalOn(field SortField, a, b models.Bill) bool {
	switch field {
	case SortByAmount:
		return a.Amount == b.Amount
	case SortByVendor:
		return a.Vendor == b.Vendor
	case SortByUploadedDate:
		return a.UploadedDate.Equal(b.UploadedDate)
	default:
		return a.DueDate.Equal(b.DueDate)
	}
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
