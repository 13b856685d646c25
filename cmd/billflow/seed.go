package main

import (
	"time"

	"github.com/paysprint/billflow/internal/models"
)

// sampleBills returns demo data for a fresh database, with due dates
// placed relative to now so the dashboard shows every lifecycle state.
func sampleBills(now time.Time) []models.Bill {
	day := func(offset int) time.Time {
		d := now.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	}
	paidAt := now.AddDate(0, 0, -5)
	scheduledFor := day(3)

	return []models.Bill{
		{
			ID:            "1",
			Vendor:        "Acme Software Inc.",
			Amount:        2500,
			DueDate:       day(30),
			Status:        models.StatusPending,
			Category:      "Software Licenses",
			Notes:         "Monthly subscription renewal for development tools",
			InvoiceNumber: "INV-2026-001",
			UploadedDate:  now.AddDate(0, 0, -2),
			Priority:      models.PriorityMedium,
			Activities: []models.Activity{
				{Type: models.ActivityUploaded, User: "John Doe", Date: now.AddDate(0, 0, -2)},
			},
		},
		{
			ID:            "2",
			Vendor:        "Global Supplies Ltd",
			Amount:        1250,
			DueDate:       day(-10),
			Status:        models.StatusApproved,
			Category:      "Office Supplies",
			Notes:         "Q1 supplies order - desk accessories and stationery",
			InvoiceNumber: "INV-2026-002",
			UploadedDate:  now.AddDate(0, 0, -15),
			Priority:      models.PriorityHigh,
			Activities: []models.Activity{
				{Type: models.ActivityUploaded, User: "Jane Smith", Date: now.AddDate(0, 0, -15)},
				{Type: models.ActivityApproved, User: "Finance Team", Date: now.AddDate(0, 0, -13)},
			},
		},
		{
			ID:            "3",
			Vendor:        "Tech Support Plus",
			Amount:        800,
			DueDate:       day(7),
			Status:        models.StatusApproved,
			Category:      "IT Services",
			Notes:         "Monthly IT support contract - includes 24/7 helpdesk",
			InvoiceNumber: "INV-2026-003",
			UploadedDate:  now.AddDate(0, 0, -3),
			Priority:      models.PriorityMedium,
			Activities: []models.Activity{
				{Type: models.ActivityUploaded, User: "Admin", Date: now.AddDate(0, 0, -3)},
				{Type: models.ActivityApproved, User: "John Doe", Date: now.AddDate(0, 0, -1)},
			},
		},
		{
			ID:            "4",
			Vendor:        "Energy Provider Co.",
			Amount:        3500,
			DueDate:       day(10),
			Status:        models.StatusPaid,
			Category:      "Utilities",
			Notes:         "Monthly electricity bill for main office",
			InvoiceNumber: "INV-2026-004",
			UploadedDate:  now.AddDate(0, 0, -20),
			PaidDate:      &paidAt,
			Priority:      models.PriorityLow,
			Activities: []models.Activity{
				{Type: models.ActivityUploaded, User: "Admin", Date: now.AddDate(0, 0, -20)},
				{Type: models.ActivityApproved, User: "Finance", Date: now.AddDate(0, 0, -18)},
				{Type: models.ActivityPaid, User: "John Doe", Date: paidAt},
			},
		},
		{
			ID:            "5",
			Vendor:        "Cloud Hosting Services",
			Amount:        4200,
			DueDate:       day(5),
			Status:        models.StatusScheduled,
			Category:      "IT Services",
			Notes:         "Annual cloud infrastructure renewal",
			InvoiceNumber: "INV-2026-005",
			UploadedDate:  now.AddDate(0, 0, -4),
			ScheduledDate: &scheduledFor,
			Recurring:     true,
			Frequency:     models.FrequencyYearly,
			Priority:      models.PriorityHigh,
			Activities: []models.Activity{
				{Type: models.ActivityUploaded, User: "DevOps Team", Date: now.AddDate(0, 0, -4)},
				{Type: models.ActivityApproved, User: "CEO", Date: now.AddDate(0, 0, -2)},
				{Type: models.ActivityScheduled, User: "Finance", Date: now.AddDate(0, 0, -1), Comment: "Payment scheduled for " + scheduledFor.Format("Jan 2, 2006")},
			},
		},
		{
			ID:            "6",
			Vendor:        "Marketing Agency Pro",
			Amount:        6500,
			DueDate:       day(14),
			Status:        models.StatusRejected,
			Category:      "Marketing",
			Notes:         "Q1 marketing campaign services",
			InvoiceNumber: "INV-2026-006",
			UploadedDate:  now.AddDate(0, 0, -6),
			Priority:      models.PriorityMedium,
			Activities: []models.Activity{
				{Type: models.ActivityUploaded, User: "Marketing", Date: now.AddDate(0, 0, -6)},
				{Type: models.ActivityRejected, User: "CEO", Date: now.AddDate(0, 0, -5), Comment: "Duplicate of INV-2025-118"},
			},
		},
		{
			ID:            "7",
			Vendor:        "Office Rent LLC",
			Amount:        12000,
			DueDate:       day(2),
			Status:        models.StatusPending,
			Category:      "Rent",
			Notes:         "Monthly office rent payment",
			InvoiceNumber: "INV-2026-007",
			UploadedDate:  now.AddDate(0, 0, -1),
			Recurring:     true,
			Frequency:     models.FrequencyMonthly,
			Priority:      models.PriorityHigh,
			Activities: []models.Activity{
				{Type: models.ActivityUploaded, User: "Admin", Date: now.AddDate(0, 0, -1)},
			},
		},
	}
}
