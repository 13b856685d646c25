package billstore

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/paysprint/billflow/internal/metrics"
	"github.com/paysprint/billflow/internal/models"
)

// CreateFields is the input to Create. Everything except the recurrence
// and priority extras is required.
type CreateFields struct {
	Vendor        string
	VendorID      string
	Amount        float64
	DueDate       time.Time
	Category      string
	Notes         string
	InvoiceNumber string
	Recurring     bool
	Frequency     models.Frequency
	Priority      models.Priority
}

// Create validates fields and adds a new pending bill with a single
// uploaded activity. On validation failure it returns models.FieldErrors
// covering every invalid field at once, and no bill is created.
func (s *Store) Create(fields CreateFields, actor string) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	errs := models.FieldErrors{}
	if strings.TrimSpace(fields.Vendor) == "" {
		errs["vendor"] = "vendor name is required"
	}
	if strings.TrimSpace(fields.InvoiceNumber) == "" {
		errs["invoiceNumber"] = "invoice number is required"
	}
	if fields.Amount <= 0 {
		errs["amount"] = "amount must be greater than zero"
	}
	if fields.DueDate.IsZero() {
		errs["dueDate"] = "due date is required"
	} else if startOfDay(fields.DueDate).Before(startOfDay(s.now())) {
		errs["dueDate"] = "due date cannot be in the past"
	}
	if len(errs) > 0 {
		metrics.RecordTransition("create", errs)
		return models.Bill{}, errs
	}

	category := fields.Category
	if category == "" {
		category = "Other"
	}
	frequency := fields.Frequency
	if !fields.Recurring {
		frequency = ""
	} else if !frequency.Valid() {
		frequency = models.FrequencyMonthly
	}

	now := s.now()
	bill := &models.Bill{
		ID:            s.newID(),
		Vendor:        fields.Vendor,
		VendorID:      fields.VendorID,
		Amount:        fields.Amount,
		DueDate:       startOfDay(fields.DueDate),
		Status:        models.StatusPending,
		Category:      category,
		Notes:         fields.Notes,
		InvoiceNumber: fields.InvoiceNumber,
		UploadedDate:  now,
		Recurring:     fields.Recurring,
		Frequency:     frequency,
		Priority:      fields.Priority,
		Activities: []models.Activity{
			{Type: models.ActivityUploaded, User: actor, Date: now},
		},
	}
	s.bills[bill.ID] = bill
	s.order = append(s.order, bill.ID)

	metrics.RecordTransition("create", nil)
	metrics.BillsCreated.Inc()
	slog.Info("Bill created",
		"bill_id", bill.ID,
		"vendor", bill.Vendor,
		"amount", bill.Amount,
		"due_date", bill.DueDate.Format(time.DateOnly),
	)
	return bill.Clone(), nil
}

// Approve moves a pending bill to approved.
func (s *Store) Approve(id, actor string) (models.Bill, error) {
	return s.approve(id, actor, "")
}

func (s *Store) approve(id, actor, comment string) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.get(id)
	if err != nil {
		metrics.RecordTransition("approve", err)
		return models.Bill{}, err
	}
	if bill.Status != models.StatusPending {
		err := &models.InvalidTransitionError{ID: id, Status: bill.Status, Operation: "approve"}
		metrics.RecordTransition("approve", err)
		return models.Bill{}, err
	}

	bill.Status = models.StatusApproved
	s.appendActivity(bill, models.ActivityApproved, actor, comment)
	metrics.RecordTransition("approve", nil)
	slog.Info("Bill approved", "bill_id", id, "actor", actor)
	return bill.Clone(), nil
}

// Reject moves a pending bill to rejected. The reason is required and is
// stored as the activity comment.
func (s *Store) Reject(id, actor, reason string) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.get(id)
	if err != nil {
		metrics.RecordTransition("reject", err)
		return models.Bill{}, err
	}
	if bill.Status != models.StatusPending {
		err := &models.InvalidTransitionError{ID: id, Status: bill.Status, Operation: "reject"}
		metrics.RecordTransition("reject", err)
		return models.Bill{}, err
	}
	if strings.TrimSpace(reason) == "" {
		err := &models.ValidationError{Reason: "rejection reason is required"}
		metrics.RecordTransition("reject", err)
		return models.Bill{}, err
	}

	bill.Status = models.StatusRejected
	s.appendActivity(bill, models.ActivityRejected, actor, reason)
	metrics.RecordTransition("reject", nil)
	slog.Info("Bill rejected", "bill_id", id, "actor", actor)
	return bill.Clone(), nil
}

// Pay marks an approved, overdue, or scheduled bill as paid, setting
// PaidDate and clearing any scheduled date.
func (s *Store) Pay(id, actor string) (models.Bill, error) {
	return s.pay(id, actor, "")
}

func (s *Store) pay(id, actor, comment string) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.get(id)
	if err != nil {
		metrics.RecordTransition("pay", err)
		return models.Bill{}, err
	}
	switch bill.Status {
	case models.StatusApproved, models.StatusOverdue, models.StatusScheduled:
	default:
		err := &models.InvalidTransitionError{ID: id, Status: bill.Status, Operation: "pay"}
		metrics.RecordTransition("pay", err)
		return models.Bill{}, err
	}

	now := s.now()
	bill.Status = models.StatusPaid
	bill.PaidDate = &now
	bill.ScheduledDate = nil
	s.appendActivity(bill, models.ActivityPaid, actor, comment)
	metrics.RecordTransition("pay", nil)
	slog.Info("Bill paid", "bill_id", id, "actor", actor, "amount", bill.Amount)
	return bill.Clone(), nil
}

// SchedulePayment queues payment of an approved or overdue bill for a
// future date. The date must be between today and the due date inclusive.
func (s *Store) SchedulePayment(id, actor string, date time.Time) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.get(id)
	if err != nil {
		metrics.RecordTransition("schedule", err)
		return models.Bill{}, err
	}
	switch bill.Status {
	case models.StatusApproved, models.StatusOverdue:
	default:
		err := &models.InvalidTransitionError{ID: id, Status: bill.Status, Operation: "schedule"}
		metrics.RecordTransition("schedule", err)
		return models.Bill{}, err
	}

	day := startOfDay(date)
	if day.Before(startOfDay(s.now())) {
		err := &models.ValidationError{Reason: "scheduled date cannot be in the past"}
		metrics.RecordTransition("schedule", err)
		return models.Bill{}, err
	}
	if day.After(startOfDay(bill.DueDate)) {
		err := &models.ValidationError{Reason: "scheduled date cannot be after the due date"}
		metrics.RecordTransition("schedule", err)
		return models.Bill{}, err
	}

	bill.Status = models.StatusScheduled
	bill.ScheduledDate = &day
	s.appendActivity(bill, models.ActivityScheduled, actor,
		fmt.Sprintf("Payment scheduled for %s", day.Format("Jan 2, 2006")))
	metrics.RecordTransition("schedule", nil)
	slog.Info("Payment scheduled", "bill_id", id, "actor", actor, "date", day.Format(time.DateOnly))
	return bill.Clone(), nil
}

// AddComment appends a comment activity without changing status. Comments
// are allowed on any bill, including paid and rejected ones.
func (s *Store) AddComment(id, actor, text string) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.get(id)
	if err != nil {
		metrics.RecordTransition("comment", err)
		return models.Bill{}, err
	}
	if strings.TrimSpace(text) == "" {
		err := &models.ValidationError{Reason: "comment text is required"}
		metrics.RecordTransition("comment", err)
		return models.Bill{}, err
	}

	s.appendActivity(bill, models.ActivityComment, actor, text)
	metrics.RecordTransition("comment", nil)
	return bill.Clone(), nil
}

// DetailsPatch selects which editable fields UpdateDetails changes.
// Nil fields are left as they are. Vendor, amount, invoice number, and due
// date are fixed after creation.
type DetailsPatch struct {
	Notes     *string
	Category  *string
	Priority  *models.Priority
	Recurring *bool
	Frequency *models.Frequency
}

// UpdateDetails edits the mutable details of a non-terminal bill and
// appends an edited activity.
func (s *Store) UpdateDetails(id, actor string, patch DetailsPatch) (models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bill, err := s.get(id)
	if err != nil {
		metrics.RecordTransition("edit", err)
		return models.Bill{}, err
	}
	if bill.Status.Terminal() {
		err := &models.InvalidTransitionError{ID: id, Status: bill.Status, Operation: "edit"}
		metrics.RecordTransition("edit", err)
		return models.Bill{}, err
	}
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		err := &models.ValidationError{Reason: fmt.Sprintf("unknown category %q", *patch.Category)}
		metrics.RecordTransition("edit", err)
		return models.Bill{}, err
	}
	if patch.Frequency != nil && *patch.Frequency != "" && !patch.Frequency.Valid() {
		err := &models.ValidationError{Reason: fmt.Sprintf("unknown frequency %q", *patch.Frequency)}
		metrics.RecordTransition("edit", err)
		return models.Bill{}, err
	}

	if patch.Notes != nil {
		bill.Notes = *patch.Notes
	}
	if patch.Category != nil {
		bill.Category = *patch.Category
	}
	if patch.Priority != nil {
		bill.Priority = *patch.Priority
	}
	if patch.Recurring != nil {
		bill.Recurring = *patch.Recurring
		if !bill.Recurring {
			bill.Frequency = ""
		}
	}
	if patch.Frequency != nil && bill.Recurring {
		bill.Frequency = *patch.Frequency
	}

	s.appendActivity(bill, models.ActivityEdited, actor, "")
	metrics.RecordTransition("edit", nil)
	slog.Info("Bill edited", "bill_id", id, "actor", actor)
	return bill.Clone(), nil
}

// BulkResult is the outcome of one id within a bulk operation.
type BulkResult struct {
	ID   string
	Bill models.Bill
	Err  error
}

// BulkApprove applies Approve to each id independently. A failure on one
// id does not stop the others; results match the input order.
func (s *Store) BulkApprove(ids []string, actor string) []BulkResult {
	results := make([]BulkResult, len(ids))
	for i, id := range ids {
		bill, err := s.approve(id, actor, "Bulk approved")
		results[i] = BulkResult{ID: id, Bill: bill, Err: err}
	}
	return results
}

// BulkPay applies Pay to each id independently, best-effort, results in
// input order.
func (s *Store) BulkPay(ids []string, actor string) []BulkResult {
	results := make([]BulkResult, len(ids))
	for i, id := range ids {
		bill, err := s.pay(id, actor, "Bulk payment")
		results[i] = BulkResult{ID: id, Bill: bill, Err: err}
	}
	return results
}
