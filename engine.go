package matchbook

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/apd"
)

var (
	ErrInvalidSide  = errors.New("invalid order side")
	ErrInvalidQty   = errors.New("invalid quantity provided")
	ErrInvalidPrice = errors.New("price has to be positive")

	BaseContext = apd.Context{
		Precision:   0,               // no rounding
		MaxExponent: apd.MaxExponent, // up to 10^5 exponent
		MinExponent: apd.MinExponent, // support only 4 decimal places
		Traps:       apd.DefaultTraps,
	}
)

// Engine matches incoming orders against resting liquidity under
// price-time priority. All book mutation goes through Submit.
type Engine struct {
	store     *BookStore
	tradeBook *TradeBook
	callbacks []TradeCallbackFunc

	matchMutex sync.Mutex // mutex that ensures that matching is always sequential
}

// NewEngine creates a matching engine over the given store. The trade book
// may be nil when no trade log is wanted.
func NewEngine(store *BookStore, tradeBook *TradeBook) *Engine {
	return &Engine{
		store:     store,
		tradeBook: tradeBook,
	}
}

// OnTrade registers a callback invoked for every emitted trade.
func (e *Engine) OnTrade(callback TradeCallbackFunc) {
	e.callbacks = append(e.callbacks, callback)
}

// Submit inserts one order and runs the matching loop for its instrument.
// Returned trades are in execution order. Rejected orders cause no book
// mutation.
func (e *Engine) Submit(order Order) ([]Trade, error) {
	if order.Side != SideBuy && order.Side != SideSell {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSide, order.Side)
	}
	if order.Qty <= 0 {
		return nil, ErrInvalidQty
	}
	if order.Price.Sign() <= 0 {
		return nil, ErrInvalidPrice
	}

	e.matchMutex.Lock()
	defer e.matchMutex.Unlock()

	if order.Side == SideBuy {
		e.store.PushBid(order)
	} else {
		e.store.PushAsk(order)
	}
	return e.match(order.Instrument), nil
}

// match crosses the instrument's best bid against its best ask until the
// spread opens or one side empties.
func (e *Engine) match(instrument string) []Trade {
	var trades []Trade
	for {
		bid, ok := e.store.PeekBestBid(instrument)
		if !ok {
			break
		}
		ask, ok := e.store.PeekBestAsk(instrument)
		if !ok {
			break
		}
		if ask.Price.Cmp(&bid.Price) > 0 { // spread open, no trade possible
			break
		}

		e.store.PopBestBid(instrument)
		e.store.PopBestAsk(instrument)

		qty := min(bid.Qty, ask.Qty)
		trade := Trade{
			BuyOrderID:  bid.ID,
			SellOrderID: ask.ID,
			Instrument:  instrument,
			Qty:         qty,
			Price:       ask.Price, // the ask always sets the execution price
			Total:       tradeTotal(ask.Price, qty),
		}
		if e.tradeBook != nil {
			trade = e.tradeBook.Enter(trade)
		}
		for _, callback := range e.callbacks {
			callback(trade)
		}
		trades = append(trades, trade)

		diff := bid.Qty - ask.Qty
		switch {
		case diff > 0: // bid partially filled, reinsert at its original priority
			bid.Qty = diff
			e.store.PushBid(bid)
		case diff < 0: // ask partially filled, reinsert at its original priority
			ask.Qty = -diff
			e.store.PushAsk(ask)
		}
	}
	return trades
}

// BestBid returns the instrument's highest-priority bid, for diagnostics.
func (e *Engine) BestBid(instrument string) (Order, bool) {
	return e.store.PeekBestBid(instrument)
}

// BestAsk returns the instrument's highest-priority ask, for diagnostics.
func (e *Engine) BestAsk(instrument string) (Order, bool) {
	return e.store.PeekBestAsk(instrument)
}

func tradeTotal(price apd.Decimal, qty int64) apd.Decimal {
	var total apd.Decimal
	if _, err := BaseContext.Mul(&total, &price, apd.New(qty, 0)); err != nil {
		panic(fmt.Errorf("trade total for price %s qty %d: %w", price.String(), qty, err))
	}
	return total
}
