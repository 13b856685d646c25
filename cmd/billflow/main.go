package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/paysprint/billflow/internal/billstore"
	"github.com/paysprint/billflow/internal/storage/sqlite"
	"github.com/paysprint/billflow/internal/view"
	"github.com/paysprint/billflow/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/bills.db")
	exportPath := getEnv("EXPORT_PATH", "./bills-export.csv")

	db, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("Storage initialized", "database", dbPath)

	ctx := context.Background()
	now := time.Now()

	bills, err := db.ListBills(ctx)
	if err != nil {
		slog.Error("Failed to load bills", "error", err)
		os.Exit(1)
	}
	if len(bills) == 0 {
		bills = sampleBills(now)
		for i := range bills {
			if err := db.SaveBill(ctx, &bills[i]); err != nil {
				slog.Error("Failed to save seed bill", "bill_id", bills[i].ID, "error", err)
				os.Exit(1)
			}
		}
		slog.Info("Seeded sample bills", "count", len(bills))
	}

	store := billstore.New()
	if err := store.Seed(bills); err != nil {
		slog.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}

	stats := view.AggregateTotals(store.List(), now)
	slog.Info("Dashboard totals",
		"bills", stats.BillCount,
		"total", stats.Total,
		"pending", stats.Pending,
		"approved", stats.Approved,
		"paid", stats.Paid,
		"overdue", stats.Overdue,
		"scheduled", stats.Scheduled,
		"outstanding", stats.Outstanding,
	)
	for _, cat := range view.CategoryBreakdown(store.List(), now) {
		slog.Info("Category", "name", cat.Category, "amount", cat.Amount)
	}
	for _, bill := range store.List() {
		status := view.EffectiveStatus(bill, now)
		slog.Info("Bill",
			"vendor", bill.Vendor,
			"invoice", bill.InvoiceNumber,
			"amount", bill.Amount,
			"status", status,
			"due", view.DueDateLabel(bill.DueDate, status, now),
		)
	}

	visible := view.FilterAndSort(store.List(), view.Query{
		SortField:     view.SortByDueDate,
		SortDirection: view.SortAsc,
	}, now)

	f, err := os.Create(exportPath)
	if err != nil {
		slog.Error("Failed to create export file", "path", exportPath, "error", err)
		os.Exit(1)
	}
	if err := view.ExportCSV(f, visible, now); err != nil {
		f.Close()
		slog.Error("Failed to write export", "path", exportPath, "error", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		slog.Error("Failed to close export file", "path", exportPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Export written", "path", exportPath, "bills", len(visible))
}
