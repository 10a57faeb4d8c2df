package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// ORDER INDEX — Immutable customer-keyed snapshot
// ============================================================================
// Built once through the append/finalize protocol, then shared freely: every
// aggregator is a pure read-only function of the index, so any number of
// concurrent readers is safe without locking.
// ============================================================================

const dateLayout = "2006-01-02"

// OrderIndex groups validated order records by customer. Arrival order is
// preserved within each customer. Every listed customer has at least one
// record.
type OrderIndex struct {
	byCustomer map[string][]OrderRecord
	customers  []string
	size       int
}

// Len returns the total number of records across all customers.
func (idx *OrderIndex) Len() int { return idx.size }

// Customers returns all customer IDs in ascending order.
func (idx *OrderIndex) Customers() []string { return idx.customers }

// Orders returns a customer's records in arrival order, or nil for an
// unknown customer. The returned slice is shared with the index — callers
// must not modify it.
func (idx *OrderIndex) Orders(customerID string) []OrderRecord {
	return idx.byCustomer[customerID]
}

// IndexBuilder accumulates raw tuples into an OrderIndex. Append parses and
// validates eagerly: the first malformed tuple fails the build, and no
// partial index is ever exposed.
type IndexBuilder struct {
	byCustomer map[string][]OrderRecord
	size       int
	sealed     bool
}

// NewIndexBuilder starts an empty build.
func NewIndexBuilder() *IndexBuilder {
	return &IndexBuilder{byCustomer: make(map[string][]OrderRecord)}
}

// Append parses one raw tuple into the builder. Returns a
// *MalformedRecordError when a field is missing or invalid, and a plain
// error once the builder has been finalized.
func (b *IndexBuilder) Append(raw RawOrder) error {
	if b.sealed {
		return fmt.Errorf("append after finalize")
	}
	rec, err := parseOrder(raw)
	if err != nil {
		return err
	}
	b.byCustomer[rec.CustomerID] = append(b.byCustomer[rec.CustomerID], rec)
	b.size++
	return nil
}

// Finalize seals the builder and returns the immutable index. Idempotent;
// subsequent Append calls are rejected.
func (b *IndexBuilder) Finalize() *OrderIndex {
	b.sealed = true
	customers := make([]string, 0, len(b.byCustomer))
	for id := range b.byCustomer {
		customers = append(customers, id)
	}
	sort.Strings(customers)
	return &OrderIndex{byCustomer: b.byCustomer, customers: customers, size: b.size}
}

// BuildIndex constructs an index from a complete tuple sequence in one call.
func BuildIndex(rows []RawOrder) (*OrderIndex, error) {
	b := NewIndexBuilder()
	for _, raw := range rows {
		if err := b.Append(raw); err != nil {
			return nil, err
		}
	}
	return b.Finalize(), nil
}

func parseOrder(raw RawOrder) (OrderRecord, error) {
	fail := func(field, value, reason string) (OrderRecord, error) {
		return OrderRecord{}, &MalformedRecordError{Row: raw.Row, Field: field, Value: value, Reason: reason}
	}

	orderID := strings.TrimSpace(raw.OrderID)
	if orderID == "" {
		return fail("order_id", raw.OrderID, "missing")
	}
	customerID := strings.TrimSpace(raw.CustomerID)
	if customerID == "" {
		return fail("customer_id", raw.CustomerID, "missing")
	}
	productID := strings.TrimSpace(raw.ProductID)
	if productID == "" {
		return fail("product_id", raw.ProductID, "missing")
	}

	dateStr := strings.TrimSpace(raw.OrderDate)
	if dateStr == "" {
		return fail("order_date", raw.OrderDate, "missing")
	}
	date, err := time.ParseInLocation(dateLayout, dateStr, time.UTC)
	if err != nil {
		return fail("order_date", raw.OrderDate, "not a valid YYYY-MM-DD date")
	}

	qtyStr := strings.TrimSpace(raw.Quantity)
	if qtyStr == "" {
		return fail("quantity", raw.Quantity, "missing")
	}
	qty, err := strconv.Atoi(qtyStr)
	if err != nil {
		return fail("quantity", raw.Quantity, "not an integer")
	}
	if qty <= 0 {
		return fail("quantity", raw.Quantity, "must be positive")
	}

	priceStr := strings.TrimSpace(raw.PricePerUnit)
	if priceStr == "" {
		return fail("price_per_unit", raw.PricePerUnit, "missing")
	}
	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return fail("price_per_unit", raw.PricePerUnit, "not a decimal number")
	}
	if price.IsNegative() {
		return fail("price_per_unit", raw.PricePerUnit, "must not be negative")
	}

	return OrderRecord{
		OrderID:      orderID,
		CustomerID:   customerID,
		OrderDate:    date,
		ProductID:    productID,
		Quantity:     qty,
		PricePerUnit: price,
	}, nil
}
