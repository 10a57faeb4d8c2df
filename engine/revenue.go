package engine

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthlyRevenue buckets revenue by calendar year-month across all
// customers, in ascending chronological order. Buckets carry exact sums —
// no per-bucket rounding — so adding them up reproduces total dataset
// revenue exactly.
func MonthlyRevenue(idx *OrderIndex) []MonthRevenue {
	byMonth := make(map[YearMonth]decimal.Decimal)
	for _, customerID := range idx.Customers() {
		for _, rec := range idx.Orders(customerID) {
			ym := YearMonthOf(rec.OrderDate)
			byMonth[ym] = byMonth[ym].Add(rec.Amount())
		}
	}

	buckets := make([]MonthRevenue, 0, len(byMonth))
	for ym, total := range byMonth {
		buckets = append(buckets, MonthRevenue{Month: ym, Revenue: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month.Before(buckets[j].Month)
	})
	return buckets
}
