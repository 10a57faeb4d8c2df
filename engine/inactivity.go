package engine

import (
	"sort"
	"time"
)

// InactiveCustomers lists customers whose most recent order is strictly
// earlier than the reference date minus windowMonths calendar months.
//
// The reference date is an explicit parameter, never an implicit wall clock,
// so repeated runs over the same dataset agree; pass LatestOrderDate for a
// dataset-relative cutoff. The result is sorted by last order date
// descending (most-recently-inactive first), customer ID ascending on equal
// dates.
func InactiveCustomers(idx *OrderIndex, reference time.Time, windowMonths int) ([]InactiveCustomer, error) {
	if windowMonths < 0 {
		return nil, &InvalidCriteriaError{Reason: "window months must not be negative"}
	}
	cutoff := AddMonths(reference, -windowMonths)

	var inactive []InactiveCustomer
	for _, customerID := range idx.Customers() {
		last := lastOrderDate(idx.Orders(customerID))
		if last.Before(cutoff) {
			inactive = append(inactive, InactiveCustomer{CustomerID: customerID, LastOrderDate: last})
		}
	}

	sort.Slice(inactive, func(i, j int) bool {
		if !inactive[i].LastOrderDate.Equal(inactive[j].LastOrderDate) {
			return inactive[i].LastOrderDate.After(inactive[j].LastOrderDate)
		}
		return inactive[i].CustomerID < inactive[j].CustomerID
	})
	return inactive, nil
}

// LatestOrderDate returns the most recent order date across the whole
// dataset. ok is false when the index is empty.
func LatestOrderDate(idx *OrderIndex) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, customerID := range idx.Customers() {
		if last := lastOrderDate(idx.Orders(customerID)); !found || last.After(latest) {
			latest = last
			found = true
		}
	}
	return latest, found
}

func lastOrderDate(orders []OrderRecord) time.Time {
	var last time.Time
	for _, rec := range orders {
		if rec.OrderDate.After(last) {
			last = rec.OrderDate
		}
	}
	return last
}
