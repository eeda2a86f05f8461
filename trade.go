package matchbook

import (
	"fmt"

	"github.com/cockroachdb/apd"
)

// Trade represents two opposed matched orders. Trades are emitted, reported
// and optionally logged in a TradeBook; they are never stored in a book.
type Trade struct {
	ID          uint64
	BuyOrderID  string
	SellOrderID string
	Instrument  string
	Qty         int64
	Price       apd.Decimal
	Total       apd.Decimal
}

// String renders the report line: buy order id, sell order id, execution
// price to two decimal places and executed quantity, two-space separated.
func (t Trade) String() string {
	price, _ := t.Price.Float64()
	return fmt.Sprintf("%s  %s  %.2f  %d", t.BuyOrderID, t.SellOrderID, price, t.Qty)
}
