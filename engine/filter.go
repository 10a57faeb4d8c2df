package engine

import "sort"

// ============================================================================
// QUERY FILTER — Multi-criteria order selection + streak detection
// ============================================================================
// All supplied criteria combine with logical AND in a single pass; absent
// criteria impose no constraint. The customer-level spend gate is resolved
// up front into a lookup set, the per-record checks run inline.
// ============================================================================

// FilterOrders returns the orders matching every supplied criterion. Date
// bounds are inclusive. MinSpent gates whole customers by their aggregate
// spend: once a customer qualifies, their records are still subject to the
// per-record date and product checks, but the gate itself never excludes
// individual records.
//
// Records come back grouped by ascending customer ID, arrival order within
// each customer.
func FilterOrders(idx *OrderIndex, criteria Criteria) ([]OrderRecord, error) {
	if err := criteria.validate(); err != nil {
		return nil, err
	}

	var qualified map[string]bool
	if criteria.MinSpent != nil {
		totals := TotalSpend(idx)
		qualified = make(map[string]bool, len(totals))
		for customerID, total := range totals {
			if total.Cmp(*criteria.MinSpent) >= 0 {
				qualified[customerID] = true
			}
		}
	}

	var matched []OrderRecord
	for _, customerID := range idx.Customers() {
		if qualified != nil && !qualified[customerID] {
			continue
		}
		for _, rec := range idx.Orders(customerID) {
			if criteria.StartDate != nil && rec.OrderDate.Before(*criteria.StartDate) {
				continue
			}
			if criteria.EndDate != nil && rec.OrderDate.After(*criteria.EndDate) {
				continue
			}
			if criteria.ProductID != "" && rec.ProductID != criteria.ProductID {
				continue
			}
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func (c Criteria) validate() error {
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return &InvalidCriteriaError{Reason: "end date before start date"}
	}
	if c.MinSpent != nil && c.MinSpent.IsNegative() {
		return &InvalidCriteriaError{Reason: "minimum spend must not be negative"}
	}
	return nil
}

// ConsecutiveMonthCustomers returns the customers whose distinct order
// months contain a run of minStreak or more consecutive calendar months.
// Orders in 2023-01, 2023-02 and 2023-03 qualify at minStreak 3; a gap such
// as 2023-01 followed by 2023-03 breaks the run. IDs come back in ascending
// order.
func ConsecutiveMonthCustomers(idx *OrderIndex, minStreak int) ([]string, error) {
	if minStreak < 0 {
		return nil, &InvalidCriteriaError{Reason: "minimum streak must not be negative"}
	}
	var customers []string
	for _, customerID := range idx.Customers() {
		if longestMonthRun(idx.Orders(customerID)) >= minStreak {
			customers = append(customers, customerID)
		}
	}
	return customers, nil
}

// longestMonthRun scans a customer's distinct order months in chronological
// order for the longest run where each month is exactly one calendar month
// after the previous.
func longestMonthRun(orders []OrderRecord) int {
	seen := make(map[int]bool, len(orders))
	for _, rec := range orders {
		seen[YearMonthOf(rec.OrderDate).Index()] = true
	}
	if len(seen) == 0 {
		return 0
	}

	months := make([]int, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	sort.Ints(months)

	longest, run := 1, 1
	for i := 1; i < len(months); i++ {
		if months[i] == months[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
