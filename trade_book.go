package matchbook

import "sync"

// TradeBook is an in-memory log of executed trades across all instruments.
type TradeBook struct {
	nextID     uint64
	trades     []Trade
	tradeMutex sync.RWMutex
}

func NewTradeBook() *TradeBook {
	return &TradeBook{
		trades: make([]Trade, 0, 1024),
	}
}

// Enter assigns the trade the next sequential ID and records it.
func (t *TradeBook) Enter(trade Trade) Trade {
	t.tradeMutex.Lock()
	defer t.tradeMutex.Unlock()

	t.nextID++
	trade.ID = t.nextID
	t.trades = append(t.trades, trade)
	return trade
}

// Trades returns a copy of all recorded trades in execution order.
func (t *TradeBook) Trades() []Trade {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	tradesCopy := make([]Trade, len(t.trades))
	copy(tradesCopy, t.trades)
	return tradesCopy
}

// InstrumentTrades returns the recorded trades for one instrument.
func (t *TradeBook) InstrumentTrades(instrument string) []Trade {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	trades := make([]Trade, 0)
	for _, trade := range t.trades {
		if trade.Instrument == instrument {
			trades = append(trades, trade)
		}
	}
	return trades
}

func (t *TradeBook) Len() int {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()
	return len(t.trades)
}
