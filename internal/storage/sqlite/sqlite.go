// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/paysprint/billflow/internal/models"
	"github.com/paysprint/billflow/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveBill inserts or replaces a bill and rewrites its activity rows.
func (s *SQLiteStore) SaveBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Keep the existing position on replace; append otherwise.
	var position int64
	err = tx.QueryRowContext(ctx,
		"SELECT position FROM bills WHERE id = ?", bill.ID,
	).Scan(&position)
	if err == sql.ErrNoRows {
		if err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position), 0) + 1 FROM bills",
		).Scan(&position); err != nil {
			return fmt.Errorf("failed to assign position: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to look up position: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO bills
		(id, vendor, vendor_id, amount, due_date, status, category, notes,
		 invoice_number, uploaded_date, paid_date, scheduled_date,
		 recurring, frequency, priority, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.ID, bill.Vendor, bill.VendorID, bill.Amount,
		bill.DueDate.Unix(), string(bill.Status), bill.Category, bill.Notes,
		bill.InvoiceNumber, bill.UploadedDate.Unix(),
		nullableUnix(bill.PaidDate), nullableUnix(bill.ScheduledDate),
		bill.Recurring, string(bill.Frequency), string(bill.Priority), position,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM activities WHERE bill_id = ?", bill.ID,
	); err != nil {
		return fmt.Errorf("failed to clear activities: %w", err)
	}
	for i, act := range bill.Activities {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO activities (bill_id, seq, type, actor, date, comment) VALUES (?, ?, ?, ?, ?, ?)",
			bill.ID, i, string(act.Type), act.User, act.Date.Unix(), act.Comment,
		)
		if err != nil {
			return fmt.Errorf("failed to insert activity: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBill retrieves a bill by ID, including its activity log.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill, err := s.scanBill(s.db.QueryRowContext(ctx,
		billColumns+" FROM bills WHERE id = ?", billID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill not found: %s", billID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if err := s.loadActivities(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// ListBills retrieves every bill in insertion order.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]models.Bill, error) {
	rows, err := s.db.QueryContext(ctx, billColumns+" FROM bills ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []models.Bill
	for rows.Next() {
		bill, err := s.scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, *bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	for i := range bills {
		if err := s.loadActivities(ctx, &bills[i]); err != nil {
			return nil, err
		}
	}
	return bills, nil
}

// DeleteBill removes a bill; its activities cascade.
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("bill not found: %s", billID)
	}
	return nil
}

const billColumns = `SELECT id, vendor, vendor_id, amount, due_date, status,
	category, notes, invoice_number, uploaded_date, paid_date,
	scheduled_date, recurring, frequency, priority`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *SQLiteStore) scanBill(row scanner) (*models.Bill, error) {
	var (
		bill              models.Bill
		dueDate, uploaded int64
		paid, scheduled   sql.NullInt64
		status, freq, pri string
	)
	err := row.Scan(
		&bill.ID, &bill.Vendor, &bill.VendorID, &bill.Amount,
		&dueDate, &status, &bill.Category, &bill.Notes,
		&bill.InvoiceNumber, &uploaded, &paid, &scheduled,
		&bill.Recurring, &freq, &pri,
	)
	if err != nil {
		return nil, err
	}
	bill.DueDate = time.Unix(dueDate, 0)
	bill.Status = models.Status(status)
	bill.UploadedDate = time.Unix(uploaded, 0)
	bill.Frequency = models.Frequency(freq)
	bill.Priority = models.Priority(pri)
	if paid.Valid {
		t := time.Unix(paid.Int64, 0)
		bill.PaidDate = &t
	}
	if scheduled.Valid {
		t := time.Unix(scheduled.Int64, 0)
		bill.ScheduledDate = &t
	}
	return &bill, nil
}

func (s *SQLiteStore) loadActivities(ctx context.Context, bill *models.Bill) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT type, actor, date, comment FROM activities WHERE bill_id = ? ORDER BY seq",
		bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			act  models.Activity
			typ  string
			date int64
		)
		if err := rows.Scan(&typ, &act.User, &date, &act.Comment); err != nil {
			return fmt.Errorf("failed to scan activity: %w", err)
		}
		act.Type = models.ActivityType(typ)
		act.Date = time.Unix(date, 0)
		bill.Activities = append(bill.Activities, act)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate activities: %w", err)
	}
	return nil
}

func nullableUnix(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Unix()
}
