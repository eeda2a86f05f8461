package matchbook

// TradeCallbackFunc observes every trade the engine emits.
type TradeCallbackFunc func(trade Trade)
