package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"matchbook"
)

func main() {
	showBook := flag.Bool("book", false, "print per-instrument books and the trade log after the run")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: matchbook [-book] <orders file>")
		os.Exit(2)
	}

	file, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Printf("cannot open order stream: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	store := matchbook.NewBookStore()
	tradeBook := matchbook.NewTradeBook()
	engine := matchbook.NewEngine(store, tradeBook)
	engine.OnTrade(func(trade matchbook.Trade) {
		fmt.Println(trade)
	})

	feed := matchbook.NewFeed(engine, log.Default())
	if err := feed.Run(file); err != nil {
		log.Printf("order stream failed: %v", err)
		os.Exit(1)
	}

	if *showBook {
		printBooks(store)
		printTrades(tradeBook.Trades())
	}
}

func printBooks(store *matchbook.BookStore) {
	for _, instrument := range store.Instruments() {
		printOrders(instrument+" bids", store.Bids(instrument))
		printOrders(instrument+" asks", store.Asks(instrument))
	}
}

func printOrders(title string, orders []matchbook.Order) {
	writer := tablewriter.NewWriter(os.Stdout)
	writer.SetHeader([]string{"ID", "time", "price", "qty"})
	for _, order := range orders {
		writer.Append([]string{order.ID, strconv.FormatInt(order.Time, 10),
			order.Price.String(), strconv.FormatInt(order.Qty, 10)})
	}
	writer.SetCaption(true, title)
	writer.Render()
}

func printTrades(trades []matchbook.Trade) {
	writer := tablewriter.NewWriter(os.Stdout)
	writer.SetHeader([]string{"ID", "instrument", "BidID", "AskID", "qty", "price", "total"})
	for _, trade := range trades {
		writer.Append([]string{strconv.FormatUint(trade.ID, 10), trade.Instrument,
			trade.BuyOrderID, trade.SellOrderID, strconv.FormatInt(trade.Qty, 10),
			trade.Price.String(), trade.Total.String()})
	}
	writer.SetCaption(true, "trades")
	writer.Render()
}
