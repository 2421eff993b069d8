package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/bank-notification-parser/internal/models"
)

// CSVWriter writes parse outcomes to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes outcomes to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, outcomes []models.Outcome) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, outcomes)
}

// Write writes outcomes in CSV format to the given writer. Notifications no
// parser understood keep their row with the bank and figure cells left empty.
func (w *CSVWriter) Write(out io.Writer, outcomes []models.Outcome) error {
	writer := csv.NewWriter(out)

	// Summary rows before the column headers
	if w.IncludeHeader {
		matched := 0
		for _, o := range outcomes {
			if o.Matched() {
				matched++
			}
		}
		writer.Write([]string{"# Records", strconv.Itoa(len(outcomes))})
		writer.Write([]string{"# Matched", strconv.Itoa(matched)})
	}

	header := []string{"Message", "Bank", "BankType", "Amount", "Currency", "Sender", "Balance"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, o := range outcomes {
		row := []string{o.Notification.Message, o.Bank, string(o.BankType), "", "", "", ""}
		if txn := o.Transaction; txn != nil {
			row[3] = formatAmount(txn.Amount)
			row[4] = txn.Currency
			row[5] = txn.SenderName
			if txn.HasBalance() {
				row[6] = formatAmount(txn.Balance.Decimal)
			}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
