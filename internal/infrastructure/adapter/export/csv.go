package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
)

// ContentTypeCSV is the response content type of CSV exports
const ContentTypeCSV = "text/csv; charset=utf-8"

// TransactionRow is the CSV shape of a listed transaction
type TransactionRow struct {
	ID           uint64 `csv:"id"`
	Amount       int64  `csv:"amount"`
	CategoryName string `csv:"category_name"`
	Description  string `csv:"description"`
	Date         string `csv:"date"`
}

// NewTransactionRows converts listed transactions to CSV rows, dates in RFC 3339 UTC
func NewTransactionRows(items []entity.Transaction) []TransactionRow {
	rows := make([]TransactionRow, 0, len(items))
	for _, t := range items {
		row := TransactionRow{
			ID:           t.ID,
			Amount:       t.Amount,
			CategoryName: t.CategoryName,
			Date:         t.Date.UTC().Format(time.RFC3339),
		}
		if t.Description != nil {
			row.Description = *t.Description
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteTransactions writes a header row and one row per transaction
func WriteTransactions(w io.Writer, items []entity.Transaction) error {
	if err := gocsv.Marshal(NewTransactionRows(items), w); err != nil {
		return fmt.Errorf("write transactions csv: %w", err)
	}
	return nil
}

// WritePeriodRows writes flattened periodic summary rows
func WritePeriodRows(w io.Writer, rows []entity.PeriodRow) error {
	if rows == nil {
		rows = []entity.PeriodRow{}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("write period csv: %w", err)
	}
	return nil
}

// FileName builds an attachment name such as spendings-2024-05.csv
func FileName(parts ...string) string {
	return strings.Join(parts, "-") + ".csv"
}
