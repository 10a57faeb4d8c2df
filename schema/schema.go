package schema

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA — The order ingestion field contract
// ============================================================================
// Every ingestion source must emit the same six columns. This package maps
// arbitrary header spellings onto that contract and reports what is missing
// or ignored, so CSV files, database tables and API payloads all funnel
// through one set of column names.
// ============================================================================

// Canonical column names of the ingestion contract.
const (
	ColOrderID      = "order_id"
	ColCustomerID   = "customer_id"
	ColOrderDate    = "order_date"
	ColProductID    = "product_id"
	ColQuantity     = "quantity"
	ColPricePerUnit = "price_per_unit"
)

// Columns returns the canonical column names in contract order.
func Columns() []string {
	return []string{ColOrderID, ColCustomerID, ColOrderDate, ColProductID, ColQuantity, ColPricePerUnit}
}

// ColumnMap resolves contract columns to positions in a source row.
type ColumnMap struct {
	positions map[string]int

	// Skipped lists source columns outside the contract, in header order.
	// They are ignored, not an error — sources often carry extra columns.
	Skipped []string
}

// MapHeader matches a source header against the contract. Spellings are
// normalized first, so "Order ID", "order-id" and "order_id" all match.
// Duplicate or missing contract columns fail the mapping.
func MapHeader(header []string) (*ColumnMap, error) {
	want := make(map[string]bool, 6)
	for _, c := range Columns() {
		want[c] = true
	}

	m := &ColumnMap{positions: make(map[string]int, 6)}
	for i, h := range header {
		key := Normalize(h)
		if !want[key] {
			m.Skipped = append(m.Skipped, h)
			continue
		}
		if _, dup := m.positions[key]; dup {
			return nil, fmt.Errorf("duplicate column %q in header", key)
		}
		m.positions[key] = i
	}

	var missing []string
	for _, c := range Columns() {
		if _, ok := m.positions[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("header is missing required columns: %s", strings.Join(missing, ", "))
	}
	return m, nil
}

// Pick returns the named contract column from a source row, trimmed. Rows
// shorter than the header yield "" for the overhanging columns; downstream
// validation treats that as a missing field.
func (m *ColumnMap) Pick(row []string, column string) string {
	i, ok := m.positions[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Normalize converts a header cell to canonical form: "Order ID" →
// "order_id".
func Normalize(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}
