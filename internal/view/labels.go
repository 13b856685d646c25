package view

import (
	"fmt"
	"math"
	"time"

	"github.com/paysprint/billflow/internal/models"
)

// dateFormat is the fallback presentation for due dates beyond a week out.
const dateFormat = "Jan 2, 2006"

// DaysUntilDue returns the whole-calendar-day difference between now and
// the due date. Negative means past due; both sides are normalized to
// midnight first so time of day never shifts the count.
func DaysUntilDue(dueDate, now time.Time) int {
	due := startOfDay(dueDate)
	today := startOfDay(now)
	// Rounding absorbs the odd-length days a DST change produces.
	return int(math.Round(due.Sub(today).Hours() / 24))
}

// DueDateLabel returns the categorical due-date label for a bill given its
// effective status: "Paid", "<n> days overdue", "Due today", "Due
// tomorrow", "Due in <n> days" for up to a week out, or the formatted date
// otherwise.
func DueDateLabel(dueDate time.Time, effectiveStatus models.Status, now time.Time) string {
	if effectiveStatus == models.StatusPaid {
		return "Paid"
	}

	days := DaysUntilDue(dueDate, now)
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	case days <= 7:
		return fmt.Sprintf("Due in %d days", days)
	}
	return dueDate.Format(dateFormat)
}
