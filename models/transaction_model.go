package models

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BoughtItem is a denormalized snapshot taken at checkout: name and
// quantity only, deliberately decoupled from the listing's live price.
type BoughtItem struct {
	Name     string `bson:"name" json:"name"`
	Quantity int    `bson:"quantity" json:"quantity" validate:"required,min=1"`
}

// Transaction is immutable once created; no update path exists.
type Transaction struct {
	Id         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Buyer      primitive.ObjectID `bson:"buyer" json:"buyer"`
	Items      []BoughtItem       `bson:"items" json:"items"`
	TotalPrice float64            `bson:"totalPrice" json:"totalPrice"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// BuildBoughtItems snapshots a cart against the given listings, preserving
// cart order. Cart entries whose listing is missing are skipped.
func BuildBoughtItems(cart []CartItem, listings map[primitive.ObjectID]Listing) []BoughtItem {
	items := make([]BoughtItem, 0, len(cart))
	for _, entry := range cart {
		listing, ok := listings[entry.Product]
		if !ok {
			continue
		}
		items = append(items, BoughtItem{Name: listing.Title, Quantity: entry.Quantity})
	}
	return items
}

// ClampStock decrements stock by quantity, floored at zero.
func ClampStock(stock, quantity int) int {
	if remaining := stock - quantity; remaining > 0 {
		return remaining
	}
	return 0
}

const csvHeader = "Transaction ID,Timestamp,Buyer,Item Name,Quantity,Transaction Total\n"

var sydney = func() *time.Location {
	loc, err := time.LoadLocation("Australia/Sydney")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// TransactionsCSV renders the export: one data row per item, all items of a
// transaction sharing its id, timestamp and total. The column order is a
// compatibility contract.
func TransactionsCSV(transactions []Transaction, buyerNames map[primitive.ObjectID]string) string {
	var b strings.Builder
	b.WriteString(csvHeader)

	for _, transaction := range transactions {
		timestamp := transaction.CreatedAt.In(sydney).Format("02/01/2006, 3:04:05 pm")
		total := strconv.FormatFloat(transaction.TotalPrice, 'f', -1, 64)
		for _, item := range transaction.Items {
			name := strings.ReplaceAll(item.Name, `"`, `""`)
			b.WriteString(transaction.Id.Hex())
			b.WriteString(`,"` + timestamp + `",`)
			b.WriteString(buyerNames[transaction.Buyer])
			b.WriteString(`,"` + name + `",`)
			b.WriteString(strconv.Itoa(item.Quantity))
			b.WriteString("," + total + "\n")
		}
	}
	return b.String()
}
