package models

import "time"

// Bill represents a vendor invoice tracked through the approval and
// payment lifecycle. All state changes flow through the billstore package,
// which appends exactly one activity per transition.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format),
	// stable for the bill's lifetime.
	ID string

	// Vendor is the name of the vendor the bill is payable to.
	Vendor string

	// VendorID optionally references a vendor record in the host system.
	VendorID string

	// Amount is the bill total. Always > 0; currency-agnostic.
	Amount float64

	// DueDate is the calendar date payment is due. Time of day is ignored
	// everywhere; comparisons normalize to midnight.
	DueDate time.Time

	// Status is the stored lifecycle state. Views project pending,
	// approved, and scheduled bills past their due date as overdue
	// without writing that status back.
	Status Status

	// Category is one of the fixed category set (see Categories).
	Category string

	// Notes is free-text context supplied by the uploader.
	Notes string

	// InvoiceNumber is the vendor's invoice reference. Unique per vendor
	// in principle, not enforced.
	InvoiceNumber string

	// UploadedDate is when the bill entered the system.
	UploadedDate time.Time

	// PaidDate is set if and only if the status is paid.
	PaidDate *time.Time

	// ScheduledDate is set if and only if the status is scheduled.
	// Always on or before DueDate.
	ScheduledDate *time.Time

	// Recurring marks bills that repeat at Frequency intervals.
	Recurring bool

	// Frequency is the recurrence interval. Only meaningful when
	// Recurring is true.
	Frequency Frequency

	// Priority is the urgency assigned at upload. Optional.
	Priority Priority

	// Activities is the append-only audit log. Insertion order is
	// chronological order; every bill carries at least the uploaded
	// activity from creation.
	Activities []Activity
}

// Clone returns a deep copy of the bill so callers can hold a snapshot
// without sharing state with the store.
func (b *Bill) Clone() Bill {
	out := *b
	if b.PaidDate != nil {
		d := *b.PaidDate
		out.PaidDate = &d
	}
	if b.ScheduledDate != nil {
		d := *b.ScheduledDate
		out.ScheduledDate = &d
	}
	out.Activities = make([]Activity, len(b.Activities))
	copy(out.Activities, b.Activities)
	return out
}

// Categories is the fixed set of bill categories.
var Categories = []string{
	"Software Licenses",
	"Office Supplies",
	"IT Services",
	"Utilities",
	"Professional Services",
	"Marketing",
	"Travel",
	"Insurance",
	"Rent",
	"Equipment",
	"Subscriptions",
	"Other",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range Categories {
		if cat == c {
			return true
		}
	}
	return false
}
