package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/orderlens-org/orderlens/engine"
	"github.com/orderlens-org/orderlens/schema"
)

// ============================================================================
// CSV HELPER — Parses CSV data into raw order tuples
// ============================================================================
// The consumer reads the CSV from wherever it lives (file, object store,
// HTTP response). This helper matches the header against the ingestion
// contract and emits RawOrder tuples for the index builder; parsing and
// validation of field values happen in the builder, which owns the
// malformed-record policy.
// ============================================================================

// ParseCSV reads a whole CSV document into raw order tuples. Data rows keep
// their 1-based position for error reporting downstream.
func ParseCSV(data []byte) ([]engine.RawOrder, error) {
	var rows []engine.RawOrder
	err := ReadOrders(bytes.NewReader(data), func(raw engine.RawOrder) error {
		rows = append(rows, raw)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadOrders streams raw order tuples from CSV, invoking fn once per data
// row. The caller decides what happens to each tuple — collect it, append it
// to an index builder, count it — without holding the file in memory twice.
// A non-nil error from fn stops the stream and is returned as-is.
func ReadOrders(r io.Reader, fn func(engine.RawOrder) error) error {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read CSV header: %w", err)
	}
	m, err := schema.MapHeader(header)
	if err != nil {
		return err
	}

	row := 0
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read CSV row %d: %w", row+1, err)
		}
		row++

		raw := engine.RawOrder{
			Row:          row,
			OrderID:      m.Pick(fields, schema.ColOrderID),
			CustomerID:   m.Pick(fields, schema.ColCustomerID),
			OrderDate:    m.Pick(fields, schema.ColOrderDate),
			ProductID:    m.Pick(fields, schema.ColProductID),
			Quantity:     m.Pick(fields, schema.ColQuantity),
			PricePerUnit: m.Pick(fields, schema.ColPricePerUnit),
		}
		if err := fn(raw); err != nil {
			return err
		}
	}
}
