// Package ledger holds the player's money and item stock.
package ledger

import (
	"maps"
	"sync"

	"go-farm/internal/config"
	"go-farm/internal/defs"
)

// Storage is the inventory ledger. Every mutation is one transaction under
// the lock, so a debit without its matching credit is never observable.
type Storage struct {
	mu    sync.Mutex
	money int64
	items map[defs.Item]int64
}

// Snapshot is a consistent copy of the ledger taken under one lock.
type Snapshot struct {
	Money int64
	Items map[defs.Item]int64
}

// Quantity returns the stock of item; missing keys read as zero.
func (s Snapshot) Quantity(item defs.Item) int64 {
	return s.Items[item]
}

func NewStorage(money int64) *Storage {
	return &Storage{
		money: money,
		items: make(map[defs.Item]int64),
	}
}

func (s *Storage) Money() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.money
}

func (s *Storage) Quantity(item defs.Item) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[item]
}

// TakeSeed consumes one seed of crop. Returns false and changes nothing
// when the stock is empty.
func (s *Storage) TakeSeed(crop defs.CropType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := defs.SeedOf(crop)
	if s.items[item] <= 0 {
		return false
	}
	s.items[item]--
	return true
}

// Deposit credits n units of item. Non-positive amounts are ignored.
func (s *Storage) Deposit(item defs.Item, n int64) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item] += n
}

// Buy purchases as many units as money allows, capped at config.BuyLimit.
// Returns the units bought and the money spent; zero when unaffordable.
func (s *Storage) Buy(item defs.Item) (units, spent int64) {
	cost := item.Cost()
	if cost <= 0 {
		return 0, 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.money < cost {
		return 0, 0
	}
	units = min(s.money/cost, config.BuyLimit)
	spent = units * cost
	s.money -= spent
	s.items[item] += units
	return units, spent
}

// Sell liquidates the whole stock of item at its unit cost.
// Returns the units sold and the money earned; zero when out of stock.
func (s *Storage) Sell(item defs.Item) (units, earned int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	units = s.items[item]
	if units <= 0 {
		return 0, 0
	}
	earned = units * item.Cost()
	s.items[item] = 0
	s.money += earned
	return units, earned
}

func (s *Storage) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Money: s.money,
		Items: maps.Clone(s.items),
	}
}
