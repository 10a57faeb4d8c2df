package engine

import "sort"

// TopSpenders returns the k highest-spending customers, spend descending
// with customer ID ascending on equal spend, so the ranking is deterministic.
// The result is min(k, distinct customers) long; k <= 0 yields nil.
func TopSpenders(idx *OrderIndex, k int) []CustomerSpend {
	if k <= 0 {
		return nil
	}
	totals := TotalSpend(idx)
	ranked := make([]CustomerSpend, 0, len(totals))
	for _, customerID := range idx.Customers() {
		ranked = append(ranked, CustomerSpend{CustomerID: customerID, TotalSpent: totals[customerID]})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].TotalSpent.Cmp(ranked[j].TotalSpent); c != 0 {
			return c > 0
		}
		return ranked[i].CustomerID < ranked[j].CustomerID
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// MostFrequentCustomers returns every customer whose order count equals the
// maximum across the dataset — all tied customers, never a single arbitrary
// winner. IDs come back in ascending order; an empty index yields nil.
func MostFrequentCustomers(idx *OrderIndex) []string {
	max := 0
	for _, customerID := range idx.Customers() {
		if n := len(idx.Orders(customerID)); n > max {
			max = n
		}
	}
	if max == 0 {
		return nil
	}
	var leaders []string
	for _, customerID := range idx.Customers() {
		if len(idx.Orders(customerID)) == max {
			leaders = append(leaders, customerID)
		}
	}
	return leaders
}
