package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/stocktrack/backend/internal/domain/ledger"
)

// timeLayout is the timestamp format used in exported files
const timeLayout = "2006-01-02 15:04"

// CSVExporter writes sale records as CSV
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Export writes the transactions to w as CSV, header row first
func (e *CSVExporter) Export(w io.Writer, transactions []ledger.SaleTransaction) error {
	writer := csv.NewWriter(w)

	header := []string{"Date", "Item", "Quantity", "Price Each", "Discount", "Total", "Notes"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for i := range transactions {
		tx := &transactions[i]
		record := []string{
			tx.OccurredAt.Format(timeLayout),
			tx.ItemName,
			strconv.FormatInt(tx.Quantity, 10),
			tx.UnitPrice.StringFixed(2),
			tx.Discount.StringFixed(2),
			tx.Total.StringFixed(2),
			tx.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
