package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============================================================================
// SUMMARIZE — One entry point for the full report set
// ============================================================================
// Runs every standard query over the index and returns a single render-ready
// value. Callers that need one report call the individual functions; the CLI
// and anything report-shaped call this.
// ============================================================================

// Summary holds every standard report for one analysis run.
type Summary struct {
	Customers int `json:"customers"`
	Orders    int `json:"orders"`

	TotalSpend     map[string]decimal.Decimal `json:"total_spend"`
	TopSpenders    []CustomerSpend            `json:"top_spenders"`
	MostFrequent   []string                   `json:"most_frequent_customers"`
	UnitsByProduct map[string]int             `json:"units_by_product"`
	MostPopular    *ProductUnits              `json:"most_popular_product,omitempty"`
	MonthlyRevenue []MonthRevenue             `json:"monthly_revenue"`

	ReferenceDate time.Time          `json:"reference_date"`
	WindowMonths  int                `json:"window_months"`
	Inactive      []InactiveCustomer `json:"inactive_customers"`

	MinStreak       int      `json:"min_streak"`
	StreakCustomers []string `json:"consecutive_month_customers"`
}

// Summarize runs the full report set over the index. The inactivity
// reference date defaults to the latest order date in the dataset unless
// WithReferenceDate overrides it. Summarize never mutates the index; calling
// it twice yields identical results.
func Summarize(idx *OrderIndex, opts ...Option) (*Summary, error) {
	cfg := applyOptions(opts)

	var reference time.Time
	if cfg.Reference != nil {
		reference = *cfg.Reference
	} else if latest, ok := LatestOrderDate(idx); ok {
		reference = latest
	}

	inactive, err := InactiveCustomers(idx, reference, cfg.WindowMonths)
	if err != nil {
		return nil, err
	}
	streaks, err := ConsecutiveMonthCustomers(idx, cfg.MinStreak)
	if err != nil {
		return nil, err
	}

	s := &Summary{
		Customers:       len(idx.Customers()),
		Orders:          idx.Len(),
		TotalSpend:      TotalSpend(idx),
		TopSpenders:     TopSpenders(idx, cfg.TopK),
		MostFrequent:    MostFrequentCustomers(idx),
		UnitsByProduct:  UnitsSoldByProduct(idx),
		MonthlyRevenue:  MonthlyRevenue(idx),
		ReferenceDate:   reference,
		WindowMonths:    cfg.WindowMonths,
		Inactive:        inactive,
		MinStreak:       cfg.MinStreak,
		StreakCustomers: streaks,
	}
	if top, ok := MostPopularProduct(idx); ok {
		s.MostPopular = &top
	}
	return s, nil
}
