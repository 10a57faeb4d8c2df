package helpers

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/orderlens-org/orderlens/engine"
)

var ordersCSV = []byte(`order_id,customer_id,order_date,product_id,quantity,price_per_unit
O1,C1,2023-01-05,A,2,10.00
O2,C1,2023-02-10,A,1,10.00
O3,C2,2023-01-20,B,5,2.00
`)

func TestParseCSV(t *testing.T) {
	rows, err := ParseCSV(ordersCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	first := rows[0]
	want := engine.RawOrder{Row: 1, OrderID: "O1", CustomerID: "C1", OrderDate: "2023-01-05", ProductID: "A", Quantity: "2", PricePerUnit: "10.00"}
	if first != want {
		t.Fatalf("row 1 = %+v, want %+v", first, want)
	}
	if rows[2].Row != 3 {
		t.Fatalf("row numbering = %d, want 3", rows[2].Row)
	}
}

func TestParseCSV_FriendlyHeaderAndExtras(t *testing.T) {
	data := []byte(`Order ID,Customer ID,Order Date,Product ID,Quantity,Price Per Unit,Region
O1,C1,2023-01-05,A,2,10.00,EU
`)
	rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 1 || rows[0].CustomerID != "C1" || rows[0].PricePerUnit != "10.00" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestParseCSV_MissingColumn(t *testing.T) {
	data := []byte("order_id,customer_id,order_date\nO1,C1,2023-01-05\n")
	if _, err := ParseCSV(data); err == nil {
		t.Fatal("expected error for header missing contract columns")
	}
}

func TestParseCSV_EmptyInput(t *testing.T) {
	if _, err := ParseCSV(nil); err == nil {
		t.Fatal("expected error for missing header")
	}
}

func TestParseCSV_FeedsIndexBuilder(t *testing.T) {
	rows, err := ParseCSV(ordersCSV)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	idx, err := engine.BuildIndex(rows)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if idx.Len() != 3 || len(idx.Customers()) != 2 {
		t.Fatalf("index = %d records / %d customers, want 3 / 2", idx.Len(), len(idx.Customers()))
	}
}

func TestReadOrders_StreamsInOrder(t *testing.T) {
	var seen []string
	err := ReadOrders(strings.NewReader(string(ordersCSV)), func(raw engine.RawOrder) error {
		seen = append(seen, fmt.Sprintf("%d:%s", raw.Row, raw.OrderID))
		return nil
	})
	if err != nil {
		t.Fatalf("ReadOrders failed: %v", err)
	}
	want := []string{"1:O1", "2:O2", "3:O3"}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("seen = %v, want %v", seen, want)
		}
	}
}

func TestReadOrders_CallbackErrorStopsStream(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := ReadOrders(strings.NewReader(string(ordersCSV)), func(engine.RawOrder) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("err = %v, want the callback error", err)
	}
	if calls != 2 {
		t.Fatalf("callback ran %d times, want 2", calls)
	}
}
