package surcharge

import (
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Observer is notified after every mutation with the new ledger total.
type Observer func(total decimal.Decimal)

// Ledger is the ordered surcharge list of one contract draft. Insertion
// order is display order and ids are unique.
type Ledger struct {
	mu        sync.RWMutex
	node      *snowflake.Node
	items     []Item
	observers []Observer
}

// NewLedger creates an empty ledger drawing ids from node.
func NewLedger(node *snowflake.Node) *Ledger {
	return &Ledger{node: node}
}

// Subscribe registers an observer. Observers run synchronously, in
// subscription order, after the ledger lock is released.
func (l *Ledger) Subscribe(fn Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers = append(l.observers, fn)
}

// Add validates the input and appends a new item.
func (l *Ledger) Add(in Input) (Item, error) {
	if err := in.Validate(); err != nil {
		return Item{}, err
	}

	l.mu.Lock()
	item := Item{
		ID:        l.nextID(),
		Name:      strings.TrimSpace(in.Name),
		UnitPrice: in.UnitPrice,
		Quantity:  in.Quantity,
		Note:      in.Note,
	}
	l.items = append(l.items, item)
	l.mu.Unlock()

	l.notify()
	return item, nil
}

// Update replaces the item with the given id, keeping its position.
func (l *Ledger) Update(id int64, in Input) (Item, error) {
	if err := in.Validate(); err != nil {
		return Item{}, err
	}

	l.mu.Lock()
	idx := l.indexOf(id)
	if idx < 0 {
		l.mu.Unlock()
		return Item{}, ErrItemNotFound
	}
	item := Item{
		ID:        id,
		Name:      strings.TrimSpace(in.Name),
		UnitPrice: in.UnitPrice,
		Quantity:  in.Quantity,
		Note:      in.Note,
	}
	l.items[idx] = item
	l.mu.Unlock()

	l.notify()
	return item, nil
}

// Remove deletes the item if present and reports whether it was.
func (l *Ledger) Remove(id int64) bool {
	l.mu.Lock()
	idx := l.indexOf(id)
	if idx >= 0 {
		l.items = append(l.items[:idx:idx], l.items[idx+1:]...)
	}
	l.mu.Unlock()

	l.notify()
	return idx >= 0
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()

	l.notify()
}

// Get returns the item with the given id.
func (l *Ledger) Get(id int64) (Item, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if idx := l.indexOf(id); idx >= 0 {
		return l.items[idx], true
	}
	return Item{}, false
}

// All returns a copy of the items in display order.
func (l *Ledger) All() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Total sums the item amounts; zero for an empty ledger.
func (l *Ledger) Total() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalLocked()
}

func (l *Ledger) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(it.Amount())
	}
	return total
}

func (l *Ledger) notify() {
	l.mu.RLock()
	total := l.totalLocked()
	observers := make([]Observer, len(l.observers))
	copy(observers, l.observers)
	l.mu.RUnlock()

	for _, fn := range observers {
		fn(total)
	}
}

func (l *Ledger) indexOf(id int64) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// nextID must be called with the lock held.
func (l *Ledger) nextID() int64 {
	for {
		id := l.node.Generate().Int64()
		if l.indexOf(id) < 0 {
			return id
		}
	}
}
