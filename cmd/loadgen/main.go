package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// loadgen writes a synthetic order file for exercising the matching engine.
func main() {
	totalOrders := flag.Int("orders", 10000, "number of orders to generate")
	instruments := flag.String("instruments", "ABC,XYZ,QRS", "comma separated instrument names")
	basePrice := flag.Int64("base-price", 10000, "mid price in cents used for randomization")
	priceLevels := flag.Int64("price-levels", 50, "unique price levels around the mid")
	tick := flag.Int64("tick", 5, "tick size in cents for generated prices")
	maxQty := flag.Int64("max-qty", 500, "maximum order quantity")
	seed := flag.Int64("seed", time.Now().UnixNano(), "seed for deterministic random streams")
	out := flag.String("out", "", "output file (default stdout)")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	names := strings.Split(*instruments, ",")

	output := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot create output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		output = f
	}
	writer := bufio.NewWriter(output)
	defer writer.Flush()

	// arrival clock starts at 09:00:00 and only moves forward
	clock := int64(9 * 3600)

	for i := 0; i < *totalOrders; i++ {
		clock += rng.Int63n(3)
		side := "buy"
		if rng.Intn(2) == 1 {
			side = "sell"
		}
		level := rng.Int63n(*priceLevels) - *priceLevels/2
		cents := *basePrice + level**tick
		qty := 1 + rng.Int63n(*maxQty)

		fmt.Fprintf(writer, "%s %02d:%02d:%02d %s %s %.2f %d\n",
			uuid.NewString(),
			clock/3600, clock/60%60, clock%60,
			names[rng.Intn(len(names))],
			side,
			float64(cents)/100,
			qty)
	}
}
