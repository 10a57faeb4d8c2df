package engine

// UnitsSoldByProduct sums the units sold per product across all customers.
func UnitsSoldByProduct(idx *OrderIndex) map[string]int {
	units := make(map[string]int)
	for _, customerID := range idx.Customers() {
		for _, rec := range idx.Orders(customerID) {
			units[rec.ProductID] += rec.Quantity
		}
	}
	return units
}

// MostPopularProduct returns the product with the most units sold. Ties go
// to the lowest product ID so the answer is deterministic. ok is false when
// the index is empty.
func MostPopularProduct(idx *OrderIndex) (ProductUnits, bool) {
	units := UnitsSoldByProduct(idx)
	if len(units) == 0 {
		return ProductUnits{}, false
	}
	var best ProductUnits
	first := true
	for productID, n := range units {
		if first || n > best.UnitsSold || (n == best.UnitsSold && productID < best.ProductID) {
			best = ProductUnits{ProductID: productID, UnitsSold: n}
			first = false
		}
	}
	return best, true
}
