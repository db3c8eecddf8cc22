// Package ingest parses uploaded sales exports into transactions. Validation
// happens here, at the boundary: the analytics pipeline trusts what ingest
// lets through.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// ParsedTransaction is one validated row from an upload, not yet persisted.
type ParsedTransaction struct {
	Date        time.Time
	ProductName string
	Category    *string
	Quantity    float64
	Revenue     float64
	Cost        float64
}

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// ParseTransactionsCSV reads a CSV export with the header
// date,product_name,category,quantity,revenue,cost and converts its rows into
// transactions. The category column may be empty. Any invalid row aborts the
// whole upload with a row-numbered error.
func ParseTransactionsCSV(file io.Reader) ([]ParsedTransaction, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields per record
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("csv ingest: failed to read header: %w", err)
	}
	if len(header) < 6 {
		return nil, fmt.Errorf("csv ingest: expected 6 columns (date,product_name,category,quantity,revenue,cost), got %d", len(header))
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv ingest: failed to read records: %w", err)
	}

	transactions := make([]ParsedTransaction, 0, len(records))
	for i, record := range records {
		row := i + 2 // 1-based, after the header
		if len(record) < 6 {
			return nil, fmt.Errorf("csv ingest: row %d has %d columns, expected 6", row, len(record))
		}

		date, err := parseDate(strings.TrimSpace(record[0]))
		if err != nil {
			return nil, fmt.Errorf("csv ingest: row %d: invalid date %q", row, record[0])
		}

		productName := strings.TrimSpace(record[1])
		if productName == "" {
			return nil, fmt.Errorf("csv ingest: row %d: product_name is empty", row)
		}

		var category *string
		if c := strings.TrimSpace(record[2]); c != "" {
			category = &c
		}

		quantity, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil || quantity <= 0 {
			return nil, fmt.Errorf("csv ingest: row %d: quantity must be a positive number, got %q", row, record[3])
		}

		revenue, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil || revenue < 0 {
			return nil, fmt.Errorf("csv ingest: row %d: revenue must be a non-negative number, got %q", row, record[4])
		}

		cost, err := strconv.ParseFloat(strings.TrimSpace(record[5]), 64)
		if err != nil || cost < 0 {
			return nil, fmt.Errorf("csv ingest: row %d: cost must be a non-negative number, got %q", row, record[5])
		}

		transactions = append(transactions, ParsedTransaction{
			Date:        date,
			ProductName: productName,
			Category:    category,
			Quantity:    quantity,
			Revenue:     revenue,
			Cost:        cost,
		})
	}

	return transactions, nil
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}
