package engine

import (
	"errors"
	"testing"
)

func TestInactiveCustomers_WindowIsStrict(t *testing.T) {
	idx := mustIndex(t,
		row("O1", "boundary", "2023-06-30", "A", "1", "1.00"), // exactly at cutoff
		row("O2", "stale", "2023-06-29", "A", "1", "1.00"),    // one day earlier
		row("O3", "active", "2023-11-01", "A", "1", "1.00"),
	)

	inactive, err := InactiveCustomers(idx, date(t, "2023-12-30"), 6)
	if err != nil {
		t.Fatalf("InactiveCustomers failed: %v", err)
	}
	if len(inactive) != 1 || inactive[0].CustomerID != "stale" {
		t.Fatalf("got %v, want only the strictly-earlier customer", inactive)
	}
	if !inactive[0].LastOrderDate.Equal(date(t, "2023-06-29")) {
		t.Fatalf("last order date = %v, want 2023-06-29", inactive[0].LastOrderDate)
	}
}

func TestInactiveCustomers_UsesLastOrderPerCustomer(t *testing.T) {
	idx := mustIndex(t,
		row("O1", "C1", "2023-01-05", "A", "1", "1.00"),
		row("O2", "C1", "2023-11-20", "A", "1", "1.00"), // recent order revives C1
		row("O3", "C2", "2023-02-14", "B", "1", "1.00"),
	)
	inactive, err := InactiveCustomers(idx, date(t, "2023-12-01"), 6)
	if err != nil {
		t.Fatalf("InactiveCustomers failed: %v", err)
	}
	if len(inactive) != 1 || inactive[0].CustomerID != "C2" {
		t.Fatalf("got %v, want only C2", inactive)
	}
}

func TestInactiveCustomers_SortedMostRecentFirst(t *testing.T) {
	idx := mustIndex(t,
		row("O1", "older", "2023-01-10", "A", "1", "1.00"),
		row("O2", "newer", "2023-03-10", "A", "1", "1.00"),
		row("O3", "tied-b", "2023-02-10", "A", "1", "1.00"),
		row("O4", "tied-a", "2023-02-10", "A", "1", "1.00"),
	)
	inactive, err := InactiveCustomers(idx, date(t, "2024-06-01"), 6)
	if err != nil {
		t.Fatalf("InactiveCustomers failed: %v", err)
	}
	want := []string{"newer", "tied-a", "tied-b", "older"}
	if len(inactive) != len(want) {
		t.Fatalf("got %d inactive, want %d", len(inactive), len(want))
	}
	for i, customerID := range want {
		if inactive[i].CustomerID != customerID {
			t.Fatalf("position %d = %s, want %s", i, inactive[i].CustomerID, customerID)
		}
	}
}

func TestInactiveCustomers_CalendarMonthWindow(t *testing.T) {
	// Reference 2023-03-31 minus 1 calendar month clamps to 2023-02-28; a
	// fixed 30-day window would land on 2023-03-01 and misclassify.
	idx := mustIndex(t,
		row("O1", "C1", "2023-02-28", "A", "1", "1.00"),
	)
	inactive, err := InactiveCustomers(idx, date(t, "2023-03-31"), 1)
	if err != nil {
		t.Fatalf("InactiveCustomers failed: %v", err)
	}
	if len(inactive) != 0 {
		t.Fatalf("customer at the clamped cutoff must not be inactive, got %v", inactive)
	}
}

func TestInactiveCustomers_NegativeWindow(t *testing.T) {
	idx := twoCustomerIndex(t)
	_, err := InactiveCustomers(idx, date(t, "2023-12-01"), -1)
	var invalid *InvalidCriteriaError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want *InvalidCriteriaError", err)
	}
}

func TestLatestOrderDate(t *testing.T) {
	idx := twoCustomerIndex(t)
	latest, ok := LatestOrderDate(idx)
	if !ok {
		t.Fatal("expected a latest order date")
	}
	if !latest.Equal(date(t, "2023-02-10")) {
		t.Fatalf("latest = %v, want 2023-02-10", latest)
	}

	if _, ok := LatestOrderDate(mustIndex(t)); ok {
		t.Fatal("empty index should report no latest date")
	}
}
