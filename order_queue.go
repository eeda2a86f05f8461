package matchbook

import (
	"github.com/cockroachdb/apd"
	"github.com/igrmk/treemap/v2"
)

// queueKey is the full priority key of a resting order. The insertion
// sequence keeps keys strict when price and arrival time collide; such
// ties resolve in queue-insertion order.
type queueKey struct {
	price apd.Decimal
	time  int64
	seq   uint64
}

// function that compares two queue keys and returns true if a sorts before b
type LessFunc func(a, b queueKey) bool

// FIFO price-time priority: better price first, earlier arrival breaks ties.
func makeComparator(priceDescending bool) LessFunc {
	const (
		ascending  bool = true
		descending bool = false
	)
	sort := ascending
	if priceDescending {
		sort = descending
	}
	return func(a, b queueKey) bool {
		priceCmp := a.price.Cmp(&b.price) // compare prices
		if priceCmp == 0 {                // if prices are equal, compare arrival keys
			if a.time == b.time {
				return a.seq < b.seq
			}
			return a.time < b.time
		}
		if priceCmp < 0 { // if a price is less than b return true if ascending, false if descending
			return sort
		}
		return !sort // if a price is bigger than b return false if ascending, true if descending
	}
}

// orderQueue holds one side of a book sorted by a LessFunc.
type orderQueue struct {
	orders *treemap.TreeMap[queueKey, Order]
}

func newOrderQueue(less LessFunc) *orderQueue {
	return &orderQueue{
		orders: treemap.NewWithKeyCompare[queueKey, Order](less),
	}
}

func (q *orderQueue) key(order Order) queueKey {
	return queueKey{price: order.Price, time: order.Time, seq: order.seq}
}

func (q *orderQueue) Push(order Order) {
	q.orders.Set(q.key(order), order)
}

// Peek returns the best order without removing it, false if the queue is empty.
func (q *orderQueue) Peek() (Order, bool) {
	iter := q.orders.Iterator()
	if !iter.Valid() {
		return Order{}, false
	}
	return iter.Value(), true
}

// Pop removes and returns the best order, false if the queue is empty.
func (q *orderQueue) Pop() (Order, bool) {
	iter := q.orders.Iterator()
	if !iter.Valid() {
		return Order{}, false
	}
	order := iter.Value()
	q.orders.Del(iter.Key())
	return order, true
}

func (q *orderQueue) Len() int {
	return q.orders.Len()
}

// Orders returns the queue contents in match order.
func (q *orderQueue) Orders() []Order {
	orders := make([]Order, 0, q.orders.Len())
	for iter := q.orders.Iterator(); iter.Valid(); iter.Next() {
		orders = append(orders, iter.Value())
	}
	return orders
}
