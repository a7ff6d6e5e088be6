package models

import (
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildBoughtItems(t *testing.T) {
	first := primitive.NewObjectID()
	second := primitive.NewObjectID()
	missing := primitive.NewObjectID()

	cart := []CartItem{
		{Product: first, Quantity: 2},
		{Product: missing, Quantity: 1},
		{Product: second, Quantity: 3},
	}
	listings := map[primitive.ObjectID]Listing{
		first:  {Id: first, Title: "iPhone 8"},
		second: {Id: second, Title: "Galaxy S10"},
	}

	items := BuildBoughtItems(cart, listings)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (missing listing skipped)", len(items))
	}
	if items[0].Name != "iPhone 8" || items[0].Quantity != 2 {
		t.Fatalf("first item wrong: %+v", items[0])
	}
	if items[1].Name != "Galaxy S10" || items[1].Quantity != 3 {
		t.Fatalf("second item wrong: %+v", items[1])
	}
}

func TestClampStock(t *testing.T) {
	cases := []struct {
		stock, quantity, want int
	}{
		{10, 3, 7},
		{3, 3, 0},
		{2, 5, 0},
		{0, 1, 0},
	}
	for _, tc := range cases {
		if got := ClampStock(tc.stock, tc.quantity); got != tc.want {
			t.Errorf("ClampStock(%d, %d) = %d, want %d", tc.stock, tc.quantity, got, tc.want)
		}
	}
}

func TestTransactionsCSV(t *testing.T) {
	buyer := primitive.NewObjectID()
	transaction := Transaction{
		Id:    primitive.NewObjectID(),
		Buyer: buyer,
		Items: []BoughtItem{
			{Name: "iPhone 8", Quantity: 2},
			{Name: `Nokia "Brick" 3310`, Quantity: 1},
		},
		TotalPrice: 199.5,
		CreatedAt:  time.Date(2025, 5, 10, 4, 30, 15, 0, time.UTC),
	}
	names := map[primitive.ObjectID]string{buyer: "Ada Lovelace"}

	out := TransactionsCSV([]Transaction{transaction}, names)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "Transaction ID,Timestamp,Buyer,Item Name,Quantity,Transaction Total" {
		t.Fatalf("wrong header: %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("got %d data rows, want one per item (2)", len(lines)-1)
	}

	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, transaction.Id.Hex()+",") {
			t.Fatalf("row missing transaction id: %q", line)
		}
		if !strings.Contains(line, "Ada Lovelace") {
			t.Fatalf("row missing buyer name: %q", line)
		}
		if !strings.HasSuffix(line, ",199.5") {
			t.Fatalf("row missing shared total: %q", line)
		}
	}

	if !strings.Contains(lines[1], `"iPhone 8",2,`) {
		t.Fatalf("first item row wrong: %q", lines[1])
	}
	if !strings.Contains(lines[2], `"Nokia ""Brick"" 3310",1,`) {
		t.Fatalf("quotes in item name not doubled: %q", lines[2])
	}

	// both rows carry the same quoted timestamp
	stamp := strings.SplitN(lines[1], `,"`, 2)[1]
	stamp = `"` + strings.SplitN(stamp, `",`, 2)[0] + `"`
	if !strings.Contains(lines[2], stamp) {
		t.Fatalf("rows disagree on timestamp: %q vs %q", lines[1], lines[2])
	}
}

func TestTransactionsCSVEmpty(t *testing.T) {
	out := TransactionsCSV(nil, nil)
	if out != "Transaction ID,Timestamp,Buyer,Item Name,Quantity,Transaction Total\n" {
		t.Fatalf("empty export should be header only, got %q", out)
	}
}
