package matchbook

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeKey(t *testing.T) {
	key, err := ParseTimeKey("09:30:15")
	require.NoError(t, err)
	assert.Equal(t, int64(93015), key)

	key, err = ParseTimeKey("16:05:00")
	require.NoError(t, err)
	assert.Equal(t, int64(160500), key)

	_, err = ParseTimeKey("ab:cd:ef")
	assert.Error(t, err)
}

func TestParseOrder(t *testing.T) {
	order, err := ParseOrder([]string{"ord001", "09:30:15", "XYZ", "buy", "10.50", "25"})
	require.NoError(t, err)

	assert.Equal(t, "ord001", order.ID)
	assert.Equal(t, "XYZ", order.Instrument)
	assert.Equal(t, SideBuy, order.Side)
	assert.Equal(t, int64(25), order.Qty)
	assert.Equal(t, int64(93015), order.Time)
	assertPrice(t, 1050, order.Price)

	order, err = ParseOrder([]string{"ord002", "09:30:16", "XYZ", "sell", "10.00", "5"})
	require.NoError(t, err)
	assert.Equal(t, SideSell, order.Side)
}

func TestParseOrder_ErrorTaxonomy(t *testing.T) {
	_, err := ParseOrder([]string{"ord001", "09:30:15", "XYZ", "buy", "10.50"})
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = ParseOrder([]string{"ord001", "09:xx:15", "XYZ", "buy", "10.50", "25"})
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = ParseOrder([]string{"ord001", "09:30:15", "XYZ", "hold", "10.50", "25"})
	assert.ErrorIs(t, err, ErrInvalidSide)

	_, err = ParseOrder([]string{"ord001", "09:30:15", "XYZ", "buy", "banana", "25"})
	assert.ErrorIs(t, err, ErrMalformedRecord)

	_, err = ParseOrder([]string{"ord001", "09:30:15", "XYZ", "buy", "-10.50", "25"})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = ParseOrder([]string{"ord001", "09:30:15", "XYZ", "buy", "10.50", "0"})
	assert.ErrorIs(t, err, ErrInvalidQty)

	_, err = ParseOrder([]string{"ord001", "09:30:15", "XYZ", "buy", "10.50", "many"})
	assert.ErrorIs(t, err, ErrMalformedRecord)
}

func TestFeed_RunContinuesPastBadRecords(t *testing.T) {
	input := strings.Join([]string{
		"S1 09:00:00 XYZ sell 10.00 5",
		"bad record with-too few",
		"H1 09:00:01 XYZ hold 10.00 5",
		"",
		"B1 09:00:02 XYZ buy 10.00 3",
	}, "\n")

	store := NewBookStore()
	engine := NewEngine(store, nil)
	var trades []Trade
	engine.OnTrade(func(trade Trade) {
		trades = append(trades, trade)
	})

	var logged bytes.Buffer
	feed := NewFeed(engine, log.New(&logged, "", 0))
	err := feed.Run(strings.NewReader(input))
	require.NoError(t, err)

	// one bad record never corrupts the book or stops the stream
	require.Len(t, trades, 1)
	assert.Equal(t, "B1", trades[0].BuyOrderID)
	assert.Equal(t, "S1", trades[0].SellOrderID)
	assert.Equal(t, int64(3), trades[0].Qty)

	asks := store.Asks("XYZ")
	require.Len(t, asks, 1)
	assert.Equal(t, int64(2), asks[0].Qty)

	assert.Contains(t, logged.String(), "line 2: skipping record")
	assert.Contains(t, logged.String(), "line 3: skipping record")
}

func TestFeed_DefaultsLogger(t *testing.T) {
	_, engine := setup()
	feed := NewFeed(engine, nil)
	require.NotNil(t, feed.logger)
}

func TestTrade_String(t *testing.T) {
	trade := Trade{
		BuyOrderID:  "B1",
		SellOrderID: "S1",
		Price:       price(1000),
		Qty:         3,
	}
	assert.Equal(t, "B1  S1  10.00  3", trade.String())

	trade.Price = price(950)
	trade.Qty = 12
	assert.Equal(t, "B1  S1  9.50  12", trade.String())
}
