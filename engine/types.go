package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// ENGINE TYPES — Customer Order Analytics
// ============================================================================

// RawOrder is one unparsed tuple as emitted by an ingestion source (CSV row,
// database row, API payload). All fields are strings exactly as the source
// produced them. Row is the 1-based position in the source, carried into
// error reports.
type RawOrder struct {
	Row          int
	OrderID      string
	CustomerID   string
	OrderDate    string
	ProductID    string
	Quantity     string
	PricePerUnit string
}

// OrderRecord is one validated purchase line item. Immutable once built.
// OrderDate carries date-only semantics: UTC midnight, no time-of-day, no
// timezone offset.
type OrderRecord struct {
	OrderID      string          `json:"order_id"`
	CustomerID   string          `json:"customer_id"`
	OrderDate    time.Time       `json:"order_date"`
	ProductID    string          `json:"product_id"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// Amount returns the line total: price per unit times quantity.
func (r OrderRecord) Amount() decimal.Decimal {
	return r.PricePerUnit.Mul(decimal.NewFromInt(int64(r.Quantity)))
}

// CustomerSpend pairs a customer with their rounded total expenditure.
type CustomerSpend struct {
	CustomerID string          `json:"customer_id"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// ProductUnits pairs a product with the total units sold across all
// customers.
type ProductUnits struct {
	ProductID string `json:"product_id"`
	UnitsSold int    `json:"units_sold"`
}

// MonthRevenue is one calendar-month revenue bucket.
type MonthRevenue struct {
	Month   YearMonth       `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
}

// InactiveCustomer pairs a customer with the date of their most recent
// order.
type InactiveCustomer struct {
	CustomerID    string    `json:"customer_id"`
	LastOrderDate time.Time `json:"last_order_date"`
}

// Criteria selects orders for FilterOrders. Nil or zero fields impose no
// constraint; supplied fields combine with logical AND.
//
// MinSpent is a customer-level gate: it is evaluated against the customer's
// aggregate spend over all their orders, not against individual records.
type Criteria struct {
	StartDate *time.Time       // inclusive lower bound on order date
	EndDate   *time.Time       // inclusive upper bound on order date
	MinSpent  *decimal.Decimal // customer aggregate spend threshold
	ProductID string           // exact product match; empty means any
}
