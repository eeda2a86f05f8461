package matchbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enterTrade(tb *TradeBook, buyID, sellID, instr string, qty int64) Trade {
	return tb.Enter(Trade{
		BuyOrderID:  buyID,
		SellOrderID: sellID,
		Instrument:  instr,
		Qty:         qty,
		Price:       price(1000),
	})
}

func TestTradeBook_SequentialIDs(t *testing.T) {
	tb := NewTradeBook()

	first := enterTrade(tb, "B1", "S1", "XYZ", 1)
	second := enterTrade(tb, "B2", "S2", "XYZ", 2)

	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, uint64(2), second.ID)
	assert.Equal(t, 2, tb.Len())
}

func TestTradeBook_TradesReturnsCopy(t *testing.T) {
	tb := NewTradeBook()
	enterTrade(tb, "B1", "S1", "XYZ", 1)

	trades := tb.Trades()
	require.Len(t, trades, 1)
	trades[0].BuyOrderID = "mutated"

	assert.Equal(t, "B1", tb.Trades()[0].BuyOrderID)
}

func TestTradeBook_InstrumentTrades(t *testing.T) {
	tb := NewTradeBook()
	enterTrade(tb, "B1", "S1", "AAA", 1)
	enterTrade(tb, "B2", "S2", "BBB", 2)
	enterTrade(tb, "B3", "S3", "AAA", 3)

	trades := tb.InstrumentTrades("AAA")
	require.Len(t, trades, 2)
	assert.Equal(t, "B1", trades[0].BuyOrderID)
	assert.Equal(t, "B3", trades[1].BuyOrderID)
	assert.Empty(t, tb.InstrumentTrades("CCC"))
}
