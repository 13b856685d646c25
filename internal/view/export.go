package view

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/paysprint/billflow/internal/models"
)

// exportHeader matches the dashboard's CSV export columns.
var exportHeader = []string{"Vendor", "Invoice #", "Amount", "Due Date", "Status", "Category"}

// ExportCSV writes a CSV flattening of bills to w, one row per bill in the
// given order, using the effective status. Callers typically pass the
// output of FilterAndSort.
func ExportCSV(w io.Writer, bills []models.Bill, now time.Time) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, b := range bills {
		row := []string{
			b.Vendor,
			b.InvoiceNumber,
			strconv.FormatFloat(b.Amount, 'f', -1, 64),
			b.DueDate.Format(time.DateOnly),
			string(EffectiveStatus(b, now)),
			b.Category,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write bill %s: %w", b.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
