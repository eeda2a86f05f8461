package matchbook

import (
	"github.com/cockroachdb/apd"
)

// OrderSide marks an order as a bid or an ask.
type OrderSide int8

const (
	SideBuy OrderSide = iota + 1
	SideSell
)

func (s OrderSide) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "invalid"
	}
}

// Order is a single instruction to trade an instrument. IDs are assigned
// upstream and never reused; they are carried only for trade reporting and
// never take part in queue ordering.
type Order struct {
	ID         string
	Instrument string
	Side       OrderSide
	Price      apd.Decimal
	Qty        int64
	Time       int64 // arrival key, time of day collapsed to an integer

	seq uint64 // insertion sequence, assigned by the store on first push
}
