package models

import "time"

// Activity is an immutable record of one lifecycle event on a bill.
// Activities are only ever appended; the log is never reordered,
// truncated, or edited.
type Activity struct {
	// Type identifies the event kind.
	Type ActivityType

	// User is the identifier of the acting user, as supplied by the
	// caller. The store does not interpret it.
	User string

	// Date is when the event happened.
	Date time.Time

	// Comment is optional free text: the rejection reason, a scheduled
	// payment note, or a user comment.
	Comment string
}
