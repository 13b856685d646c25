package billstore

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/paysprint/billflow/internal/models"
)

// testNow pins "today" to 2026-01-20 so due-date validation is deterministic.
var testNow = time.Date(2026, 1, 20, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestStore() *Store {
	n := 0
	return New(
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("bill-%d", n)
		}),
	)
}

func validFields() CreateFields {
	return CreateFields{
		Vendor:        "Acme Software Inc.",
		Amount:        2500,
		DueDate:       date(2026, 2, 15),
		Category:      "Software Licenses",
		InvoiceNumber: "INV-2026-001",
		Priority:      models.PriorityMedium,
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		fields     CreateFields
		wantFields []string
		validate   func(t *testing.T, bill models.Bill)
	}{
		{
			name:   "valid bill starts pending with one uploaded activity",
			fields: validFields(),
			validate: func(t *testing.T, bill models.Bill) {
				if bill.Status != models.StatusPending {
					t.Errorf("status = %s, want pending", bill.Status)
				}
				if len(bill.Activities) != 1 {
					t.Fatalf("activities = %d, want 1", len(bill.Activities))
				}
				if bill.Activities[0].Type != models.ActivityUploaded {
					t.Errorf("activity type = %s, want uploaded", bill.Activities[0].Type)
				}
				if bill.Activities[0].User != "John Doe" {
					t.Errorf("activity user = %s, want John Doe", bill.Activities[0].User)
				}
				if !bill.UploadedDate.Equal(testNow) {
					t.Errorf("uploaded date = %v, want %v", bill.UploadedDate, testNow)
				}
				if bill.ID == "" {
					t.Error("expected generated id")
				}
			},
		},
		{
			name: "all four fields invalid reported at once",
			fields: CreateFields{
				Vendor:        "",
				InvoiceNumber: "",
				Amount:        0,
				DueDate:       date(2020, 1, 1),
			},
			wantFields: []string{"vendor", "invoiceNumber", "amount", "dueDate"},
		},
		{
			name: "whitespace-only vendor rejected",
			fields: func() CreateFields {
				f := validFields()
				f.Vendor = "   "
				return f
			}(),
			wantFields: []string{"vendor"},
		},
		{
			name: "due date today is allowed",
			fields: func() CreateFields {
				f := validFields()
				f.DueDate = date(2026, 1, 20)
				return f
			}(),
			validate: func(t *testing.T, bill models.Bill) {
				if !bill.DueDate.Equal(date(2026, 1, 20)) {
					t.Errorf("due date = %v, want 2026-01-20", bill.DueDate)
				}
			},
		},
		{
			name: "due date yesterday rejected",
			fields: func() CreateFields {
				f := validFields()
				f.DueDate = date(2026, 1, 19)
				return f
			}(),
			wantFields: []string{"dueDate"},
		},
		{
			name: "missing due date rejected",
			fields: func() CreateFields {
				f := validFields()
				f.DueDate = time.Time{}
				return f
			}(),
			wantFields: []string{"dueDate"},
		},
		{
			name: "empty category defaults to Other",
			fields: func() CreateFields {
				f := validFields()
				f.Category = ""
				return f
			}(),
			validate: func(t *testing.T, bill models.Bill) {
				if bill.Category != "Other" {
					t.Errorf("category = %s, want Other", bill.Category)
				}
			},
		},
		{
			name: "recurring without frequency defaults to monthly",
			fields: func() CreateFields {
				f := validFields()
				f.Recurring = true
				return f
			}(),
			validate: func(t *testing.T, bill models.Bill) {
				if bill.Frequency != models.FrequencyMonthly {
					t.Errorf("frequency = %s, want monthly", bill.Frequency)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore()
			bill, err := store.Create(tt.fields, "John Doe")

			if len(tt.wantFields) > 0 {
				var fieldErrs models.FieldErrors
				if !errors.As(err, &fieldErrs) {
					t.Fatalf("expected FieldErrors, got %v", err)
				}
				for _, f := range tt.wantFields {
					if _, ok := fieldErrs[f]; !ok {
						t.Errorf("missing field error for %q in %v", f, fieldErrs)
					}
				}
				if len(fieldErrs) != len(tt.wantFields) {
					t.Errorf("got %d field errors, want %d: %v", len(fieldErrs), len(tt.wantFields), fieldErrs)
				}
				if store.Len() != 0 {
					t.Errorf("store has %d bills after failed create, want 0", store.Len())
				}
				return
			}

			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, bill)
			}
		})
	}
}

func TestApproveThenPay(t *testing.T) {
	store := newTestStore()
	bill, err := store.Create(validFields(), "John Doe")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := store.Approve(bill.ID, "Finance"); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	paid, err := store.Pay(bill.ID, "Finance")
	if err != nil {
		t.Fatalf("Pay failed: %v", err)
	}

	if paid.Status != models.StatusPaid {
		t.Errorf("status = %s, want paid", paid.Status)
	}
	if paid.PaidDate == nil || !paid.PaidDate.Equal(testNow) {
		t.Errorf("paid date = %v, want %v", paid.PaidDate, testNow)
	}
	if len(paid.Activities) != 3 {
		t.Fatalf("activities = %d, want 3", len(paid.Activities))
	}
	want := []models.ActivityType{models.ActivityUploaded, models.ActivityApproved, models.ActivityPaid}
	for i, typ := range want {
		if paid.Activities[i].Type != typ {
			t.Errorf("activity %d = %s, want %s", i, paid.Activities[i].Type, typ)
		}
	}
}

func TestApproveInvalidSources(t *testing.T) {
	store := newTestStore()
	bill, _ := store.Create(validFields(), "John Doe")
	store.Approve(bill.ID, "Finance")

	// Already approved.
	_, err := store.Approve(bill.ID, "Finance")
	var itErr *models.InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if itErr.Status != models.StatusApproved || itErr.Operation != "approve" {
		t.Errorf("error = %v, want status approved op approve", itErr)
	}

	// Unknown id.
	_, err = store.Approve("missing", "Finance")
	var nfErr *models.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestReject(t *testing.T) {
	t.Run("blank reason fails and leaves bill unchanged", func(t *testing.T) {
		store := newTestStore()
		bill, _ := store.Create(validFields(), "John Doe")

		for _, reason := range []string{"", "   ", "\t\n"} {
			_, err := store.Reject(bill.ID, "Finance", reason)
			var vErr *models.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("reason %q: expected ValidationError, got %v", reason, err)
			}
		}

		got, _ := store.Get(bill.ID)
		if got.Status != models.StatusPending {
			t.Errorf("status = %s, want pending", got.Status)
		}
		if len(got.Activities) != 1 {
			t.Errorf("activities = %d, want 1", len(got.Activities))
		}
	})

	t.Run("reason is stored as the activity comment", func(t *testing.T) {
		store := newTestStore()
		bill, _ := store.Create(validFields(), "John Doe")

		rejected, err := store.Reject(bill.ID, "Finance", "Duplicate invoice")
		if err != nil {
			t.Fatalf("Reject failed: %v", err)
		}
		if rejected.Status != models.StatusRejected {
			t.Errorf("status = %s, want rejected", rejected.Status)
		}
		last := rejected.Activities[len(rejected.Activities)-1]
		if last.Type != models.ActivityRejected || last.Comment != "Duplicate invoice" {
			t.Errorf("last activity = %+v, want rejected with reason", last)
		}
	})

	t.Run("rejecting an approved bill is an invalid transition", func(t *testing.T) {
		store := newTestStore()
		bill, _ := store.Create(validFields(), "John Doe")
		store.Approve(bill.ID, "Finance")

		_, err := store.Reject(bill.ID, "Finance", "too late")
		var itErr *models.InvalidTransitionError
		if !errors.As(err, &itErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})
}

func TestSchedulePayment(t *testing.T) {
	setup := func() (*Store, models.Bill) {
		store := newTestStore()
		bill, _ := store.Create(validFields(), "John Doe") // due 2026-02-15
		store.Approve(bill.ID, "Finance")
		return store, bill
	}

	t.Run("date after due date fails", func(t *testing.T) {
		store, bill := setup()
		_, err := store.SchedulePayment(bill.ID, "Finance", date(2026, 2, 16))
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("date equal to due date succeeds", func(t *testing.T) {
		store, bill := setup()
		scheduled, err := store.SchedulePayment(bill.ID, "Finance", date(2026, 2, 15))
		if err != nil {
			t.Fatalf("SchedulePayment failed: %v", err)
		}
		if scheduled.Status != models.StatusScheduled {
			t.Errorf("status = %s, want scheduled", scheduled.Status)
		}
		if scheduled.ScheduledDate == nil || !scheduled.ScheduledDate.Equal(date(2026, 2, 15)) {
			t.Errorf("scheduled date = %v, want 2026-02-15", scheduled.ScheduledDate)
		}
		last := scheduled.Activities[len(scheduled.Activities)-1]
		if last.Comment != "Payment scheduled for Feb 15, 2026" {
			t.Errorf("comment = %q", last.Comment)
		}
	})

	t.Run("date before today fails", func(t *testing.T) {
		store, bill := setup()
		_, err := store.SchedulePayment(bill.ID, "Finance", date(2026, 1, 19))
		var vErr *models.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("pending bill cannot be scheduled", func(t *testing.T) {
		store := newTestStore()
		bill, _ := store.Create(validFields(), "John Doe")
		_, err := store.SchedulePayment(bill.ID, "Finance", date(2026, 2, 1))
		var itErr *models.InvalidTransitionError
		if !errors.As(err, &itErr) {
			t.Fatalf("expected InvalidTransitionError, got %v", err)
		}
	})

	t.Run("paying a scheduled bill clears the scheduled date", func(t *testing.T) {
		store, bill := setup()
		if _, err := store.SchedulePayment(bill.ID, "Finance", date(2026, 2, 1)); err != nil {
			t.Fatalf("SchedulePayment failed: %v", err)
		}
		paid, err := store.Pay(bill.ID, "Finance")
		if err != nil {
			t.Fatalf("Pay failed: %v", err)
		}
		if paid.ScheduledDate != nil {
			t.Errorf("scheduled date = %v, want nil after pay", paid.ScheduledDate)
		}
		if paid.PaidDate == nil {
			t.Error("paid date not set")
		}
	})
}

func TestPayInvalidSources(t *testing.T) {
	store := newTestStore()
	pending, _ := store.Create(validFields(), "John Doe")

	if _, err := store.Pay(pending.ID, "Finance"); err == nil {
		t.Error("expected error paying a pending bill")
	}

	store.Approve(pending.ID, "Finance")
	store.Pay(pending.ID, "Finance")
	_, err := store.Pay(pending.ID, "Finance")
	var itErr *models.InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("expected InvalidTransitionError paying a paid bill, got %v", err)
	}
}

func TestPayOverdueSeedBill(t *testing.T) {
	store := newTestStore()
	err := store.Seed([]models.Bill{{
		ID:            "overdue-1",
		Vendor:        "Global Supplies Ltd",
		Amount:        1250,
		DueDate:       date(2026, 1, 10),
		Status:        models.StatusOverdue,
		Category:      "Office Supplies",
		InvoiceNumber: "INV-2026-002",
		UploadedDate:  date(2026, 1, 5),
		Activities: []models.Activity{
			{Type: models.ActivityUploaded, User: "Jane Smith", Date: date(2026, 1, 5)},
		},
	}})
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	paid, err := store.Pay("overdue-1", "Finance")
	if err != nil {
		t.Fatalf("Pay failed: %v", err)
	}
	if paid.Status != models.StatusPaid {
		t.Errorf("status = %s, want paid", paid.Status)
	}
}

func TestAddComment(t *testing.T) {
	store := newTestStore()
	bill, _ := store.Create(validFields(), "John Doe")
	store.Approve(bill.ID, "Finance")
	store.Pay(bill.ID, "Finance")

	// Terminal bills still take comments.
	commented, err := store.AddComment(bill.ID, "Auditor", "Verified against PO")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if commented.Status != models.StatusPaid {
		t.Errorf("status = %s, want paid (unchanged)", commented.Status)
	}
	last := commented.Activities[len(commented.Activities)-1]
	if last.Type != models.ActivityComment || last.Comment != "Verified against PO" {
		t.Errorf("last activity = %+v", last)
	}

	if _, err := store.AddComment(bill.ID, "Auditor", "   "); err == nil {
		t.Error("expected error for blank comment")
	}
	_, err = store.AddComment("missing", "Auditor", "hello")
	var nfErr *models.NotFoundError
	if !errors.As(err, &nfErr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUpdateDetails(t *testing.T) {
	store := newTestStore()
	bill, _ := store.Create(validFields(), "John Doe")

	notes := "Renewal covers 25 seats"
	category := "Subscriptions"
	edited, err := store.UpdateDetails(bill.ID, "John Doe", DetailsPatch{
		Notes:    &notes,
		Category: &category,
	})
	if err != nil {
		t.Fatalf("UpdateDetails failed: %v", err)
	}
	if edited.Notes != notes || edited.Category != category {
		t.Errorf("patch not applied: %+v", edited)
	}
	last := edited.Activities[len(edited.Activities)-1]
	if last.Type != models.ActivityEdited {
		t.Errorf("last activity = %s, want edited", last.Type)
	}

	bad := "Snacks"
	if _, err := store.UpdateDetails(bill.ID, "John Doe", DetailsPatch{Category: &bad}); err == nil {
		t.Error("expected error for unknown category")
	}

	store.Approve(bill.ID, "Finance")
	store.Pay(bill.ID, "Finance")
	_, err = store.UpdateDetails(bill.ID, "John Doe", DetailsPatch{Notes: &notes})
	var itErr *models.InvalidTransitionError
	if !errors.As(err, &itErr) {
		t.Fatalf("expected InvalidTransitionError editing a paid bill, got %v", err)
	}
}

func TestBulkApprove(t *testing.T) {
	store := newTestStore()
	a, _ := store.Create(validFields(), "John Doe")
	fields := validFields()
	fields.InvoiceNumber = "INV-2026-002"
	b, _ := store.Create(fields, "John Doe")
	store.Approve(b.ID, "Finance")
	store.Pay(b.ID, "Finance")

	results := store.BulkApprove([]string{a.ID, b.ID}, "Finance")
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	if results[0].ID != a.ID || results[0].Err != nil {
		t.Errorf("result[0] = %+v, want success for %s", results[0], a.ID)
	}
	if results[0].Bill.Status != models.StatusApproved {
		t.Errorf("bill a status = %s, want approved", results[0].Bill.Status)
	}
	if got := len(results[0].Bill.Activities); got != 2 {
		t.Errorf("bill a activities = %d, want 2", got)
	}
	if comment := results[0].Bill.Activities[1].Comment; comment != "Bulk approved" {
		t.Errorf("bulk activity comment = %q", comment)
	}

	var itErr *models.InvalidTransitionError
	if results[1].ID != b.ID || !errors.As(results[1].Err, &itErr) {
		t.Errorf("result[1] = %+v, want InvalidTransitionError for %s", results[1], b.ID)
	}
	unchanged, _ := store.Get(b.ID)
	if len(unchanged.Activities) != 3 {
		t.Errorf("bill b activities = %d, want 3 (unchanged)", len(unchanged.Activities))
	}
}

func TestBulkPay(t *testing.T) {
	store := newTestStore()
	var ids []string
	for i := 0; i < 3; i++ {
		fields := validFields()
		fields.InvoiceNumber = fmt.Sprintf("INV-2026-%03d", i+1)
		bill, _ := store.Create(fields, "John Doe")
		ids = append(ids, bill.ID)
	}
	store.Approve(ids[0], "Finance")
	store.Approve(ids[2], "Finance")

	results := store.BulkPay(ids, "Finance")
	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("expected approved bills to pay: %v, %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil {
		t.Error("expected pending bill to fail")
	}
	for _, i := range []int{0, 2} {
		if results[i].Bill.PaidDate == nil {
			t.Errorf("bill %d missing paid date", i)
		}
		last := results[i].Bill.Activities[len(results[i].Bill.Activities)-1]
		if last.Comment != "Bulk payment" {
			t.Errorf("bill %d bulk comment = %q", i, last.Comment)
		}
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore()
	a, _ := store.Create(validFields(), "John Doe")
	fields := validFields()
	fields.InvoiceNumber = "INV-2026-002"
	b, _ := store.Create(fields, "John Doe")

	if err := store.Delete(a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(a.ID); err == nil {
		t.Error("expected NotFound after delete")
	}
	list := store.List()
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("list = %+v, want only %s", list, b.ID)
	}

	var nfErr *models.NotFoundError
	if err := store.Delete(a.ID); !errors.As(err, &nfErr) {
		t.Errorf("expected NotFoundError deleting twice, got %v", err)
	}
}

func TestSeedValidation(t *testing.T) {
	valid := models.Bill{
		ID:            "x",
		Vendor:        "Acme",
		Amount:        10,
		DueDate:       date(2026, 2, 1),
		Status:        models.StatusPending,
		InvoiceNumber: "INV-1",
	}

	t.Run("duplicate id", func(t *testing.T) {
		store := newTestStore()
		if err := store.Seed([]models.Bill{valid, valid}); err == nil {
			t.Error("expected error for duplicate id")
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		store := newTestStore()
		bad := valid
		bad.Amount = 0
		if err := store.Seed([]models.Bill{bad}); err == nil {
			t.Error("expected error for zero amount")
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		store := newTestStore()
		bad := valid
		bad.Status = "archived"
		if err := store.Seed([]models.Bill{bad}); err == nil {
			t.Error("expected error for unknown status")
		}
	})
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := newTestStore()
	bill, _ := store.Create(validFields(), "John Doe")

	snapshot, _ := store.Get(bill.ID)
	snapshot.Vendor = "tampered"
	snapshot.Activities[0].User = "tampered"
	snapshot.Activities = append(snapshot.Activities, models.Activity{Type: models.ActivityComment})

	fresh, _ := store.Get(bill.ID)
	if fresh.Vendor != "Acme Software Inc." {
		t.Errorf("vendor mutated through snapshot: %s", fresh.Vendor)
	}
	if len(fresh.Activities) != 1 || fresh.Activities[0].User != "John Doe" {
		t.Errorf("activities mutated through snapshot: %+v", fresh.Activities)
	}
}
