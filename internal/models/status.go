package models

import "time"

// Status is the lifecycle state of a bill.
type Status string

const (
	// StatusPending means the bill is uploaded and awaiting review.
	StatusPending Status = "pending"

	// StatusApproved means the bill passed review and is ready for payment.
	StatusApproved Status = "approved"

	// StatusPaid means payment has been processed. Terminal.
	StatusPaid Status = "paid"

	// StatusOverdue means the bill is past its due date and still unpaid.
	// The store only holds this status when seed data supplies it; during
	// normal operation overdue is a view-time projection.
	StatusOverdue Status = "overdue"

	// StatusRejected means the bill was declined during review. Terminal.
	StatusRejected Status = "rejected"

	// StatusScheduled means payment is queued for a future date.
	StatusScheduled Status = "scheduled"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusPaid, StatusOverdue, StatusRejected, StatusScheduled:
		return true
	}
	return false
}

// Terminal reports whether s accepts no further status-changing operations.
// Comments may still be appended to terminal bills.
func (s Status) Terminal() bool {
	return s == StatusPaid || s == StatusRejected
}

// ActivityType identifies the kind of lifecycle event an activity records.
type ActivityType string

const (
	ActivityUploaded  ActivityType = "uploaded"
	ActivityApproved  ActivityType = "approved"
	ActivityRejected  ActivityType = "rejected"
	ActivityPaid      ActivityType = "paid"
	ActivityScheduled ActivityType = "scheduled"
	ActivityComment   ActivityType = "comment"
	ActivityEdited    ActivityType = "edited"
)

// Priority is the urgency assigned to a bill.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Frequency is how often a recurring bill repeats.
type Frequency string

const (
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// Next returns the due date of the occurrence following t.
// Unknown frequencies return t unchanged.
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case FrequencyYearly:
		return t.AddDate(1, 0, 0)
	}
	return t
}
