package engine

import "github.com/shopspring/decimal"

// TotalSpend computes each customer's total expenditure, summing price per
// unit times quantity over all their orders and rounding to two decimal
// places. Round is half-away-from-zero, which for the non-negative amounts
// the index admits is round-half-up.
func TotalSpend(idx *OrderIndex) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(idx.Customers()))
	for _, customerID := range idx.Customers() {
		sum := decimal.Zero
		for _, rec := range idx.Orders(customerID) {
			sum = sum.Add(rec.Amount())
		}
		totals[customerID] = sum.Round(2)
	}
	return totals
}
