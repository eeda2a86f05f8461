package matchbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd"
)

// ErrMalformedRecord marks a record that cannot be turned into an order.
// Malformed records are skipped; they never abort the stream.
var ErrMalformedRecord = errors.New("malformed order record")

// recordFields is the number of whitespace-separated fields in a record:
// id, arrival time, instrument, side, price, quantity.
const recordFields = 6

// ParseTimeKey collapses a time-of-day string into an integer arrival key
// by removing the separators, e.g. "09:30:15" becomes 93015. The key is a
// total order only within a single day and only for fixed-width times;
// streams crossing midnight reorder and are upstream's problem to avoid.
func ParseTimeKey(s string) (int64, error) {
	key, err := strconv.ParseInt(strings.ReplaceAll(s, ":", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return key, nil
}

// ParseOrder builds an Order from one record's fields. All conversion and
// validation failures are reported as ErrMalformedRecord except the side
// token, which keeps its own condition.
func ParseOrder(fields []string) (Order, error) {
	if len(fields) < recordFields {
		return Order{}, fmt.Errorf("%w: got %d fields, want %d", ErrMalformedRecord, len(fields), recordFields)
	}

	timeKey, err := ParseTimeKey(fields[1])
	if err != nil {
		return Order{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	var side OrderSide
	switch fields[3] {
	case "buy":
		side = SideBuy
	case "sell":
		side = SideSell
	default:
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidSide, fields[3])
	}

	price, _, err := apd.NewFromString(fields[4])
	if err != nil {
		return Order{}, fmt.Errorf("%w: invalid price %q", ErrMalformedRecord, fields[4])
	}
	if price.Sign() <= 0 {
		return Order{}, fmt.Errorf("%w: %s", ErrInvalidPrice, fields[4])
	}

	qty, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return Order{}, fmt.Errorf("%w: invalid quantity %q", ErrMalformedRecord, fields[5])
	}
	if qty <= 0 {
		return Order{}, fmt.Errorf("%w: %d", ErrInvalidQty, qty)
	}

	return Order{
		ID:         fields[0],
		Instrument: fields[2],
		Side:       side,
		Price:      *price,
		Qty:        qty,
		Time:       timeKey,
	}, nil
}

// Feed reads order records line by line and drives the engine.
type Feed struct {
	engine *Engine
	logger *log.Logger
}

func NewFeed(engine *Engine, logger *log.Logger) *Feed {
	if logger == nil {
		logger = log.Default()
	}
	return &Feed{
		engine: engine,
		logger: logger,
	}
}

// Run consumes records from r until EOF. Per-record failures are logged and
// the stream continues; only a read failure on the source itself is fatal.
func (f *Feed) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 { // blank line
			continue
		}
		order, err := ParseOrder(fields)
		if err != nil {
			f.logger.Printf("line %d: skipping record: %v", line, err)
			continue
		}
		if _, err := f.engine.Submit(order); err != nil {
			f.logger.Printf("line %d: order %s rejected: %v", line, order.ID, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading order stream: %w", err)
	}
	return nil
}
