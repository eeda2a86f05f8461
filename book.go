package matchbook

import (
	"sort"
	"sync"
)

// book is one instrument's pair of priority queues.
type book struct {
	bids *orderQueue
	asks *orderQueue
}

func newBook() *book {
	return &book{
		bids: newOrderQueue(makeComparator(true)),
		asks: newOrderQueue(makeComparator(false)),
	}
}

// BookStore owns one book per instrument. Books are created lazily on the
// first push (or Ensure) and live for the lifetime of the store. Peek and
// pop on a missing instrument report an empty side instead of failing.
type BookStore struct {
	mu    sync.RWMutex
	books map[string]*book
	seq   uint64
}

func NewBookStore() *BookStore {
	return &BookStore{
		books: make(map[string]*book),
	}
}

// Ensure creates the instrument's book if it does not exist yet.
func (s *BookStore) Ensure(instrument string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensure(instrument)
}

func (s *BookStore) ensure(instrument string) *book {
	b, ok := s.books[instrument]
	if !ok {
		b = newBook()
		s.books[instrument] = b
	}
	return b
}

// PushBid adds a bid to its instrument's book. A fresh order gets the next
// insertion sequence; a reinserted residual keeps its original one and with
// it its original queue priority.
func (s *BookStore) PushBid(order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.seq == 0 {
		s.seq++
		order.seq = s.seq
	}
	s.ensure(order.Instrument).bids.Push(order)
}

// PushAsk adds an ask to its instrument's book.
func (s *BookStore) PushAsk(order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.seq == 0 {
		s.seq++
		order.seq = s.seq
	}
	s.ensure(order.Instrument).asks.Push(order)
}

// PeekBestBid returns the highest-priority bid, false if the side is empty.
func (s *BookStore) PeekBestBid(instrument string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[instrument]
	if !ok {
		return Order{}, false
	}
	return b.bids.Peek()
}

// PeekBestAsk returns the highest-priority ask, false if the side is empty.
func (s *BookStore) PeekBestAsk(instrument string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[instrument]
	if !ok {
		return Order{}, false
	}
	return b.asks.Peek()
}

// PopBestBid removes and returns the highest-priority bid.
func (s *BookStore) PopBestBid(instrument string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[instrument]
	if !ok {
		return Order{}, false
	}
	return b.bids.Pop()
}

// PopBestAsk removes and returns the highest-priority ask.
func (s *BookStore) PopBestAsk(instrument string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[instrument]
	if !ok {
		return Order{}, false
	}
	return b.asks.Pop()
}

// Instruments lists every instrument with a book, sorted for stable output.
func (s *BookStore) Instruments() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	instruments := make([]string, 0, len(s.books))
	for instrument := range s.books {
		instruments = append(instruments, instrument)
	}
	sort.Strings(instruments)
	return instruments
}

// Bids returns the instrument's bids ordered the same way they are matched.
func (s *BookStore) Bids(instrument string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[instrument]
	if !ok {
		return nil
	}
	return b.bids.Orders()
}

// Asks returns the instrument's asks ordered the same way they are matched.
func (s *BookStore) Asks(instrument string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.books[instrument]
	if !ok {
		return nil
	}
	return b.asks.Orders()
}
