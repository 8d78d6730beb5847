package cart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ramenku/ramenku/internal/catalog"
)

var (
	ErrInvalidQuantity   = errors.New("cart: quantity must be at least 1")
	ErrUnknownSpiceLevel = errors.New("cart: spice level not offered for this menu entry")
	ErrUnknownTopping    = errors.New("cart: topping does not belong to this menu entry")
	ErrDuplicateTopping  = errors.New("cart: topping selected twice")
)

// LineItem is one configured bowl in the cart. The JSON field names mirror
// the original storefront so persisted orders keep the same document shape.
type LineItem struct {
	Item       catalog.MenuEntry `json:"ramen"`
	Quantity   int               `json:"quantity"`
	SpiceLevel string            `json:"spiceLevel"`
	Toppings   []catalog.Topping `json:"selectedToppings"`
	Notes      string            `json:"specialNotes"`
}

// NewLineItem builds a line item and enforces that the selection is valid for
// the entry: the spice level must be one of the entry's configured levels and
// every topping must come from the entry's own topping set, at most once.
func NewLineItem(entry catalog.MenuEntry, quantity int, spiceLevel string, toppingIDs []string, notes string) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, ErrInvalidQuantity
	}
	if !entry.HasSpiceLevel(spiceLevel) {
		return LineItem{}, fmt.Errorf("%w: %q", ErrUnknownSpiceLevel, spiceLevel)
	}

	seen := make(map[string]bool, len(toppingIDs))
	toppings := make([]catalog.Topping, 0, len(toppingIDs))
	for _, id := range toppingIDs {
		if seen[id] {
			return LineItem{}, fmt.Errorf("%w: %q", ErrDuplicateTopping, id)
		}
		seen[id] = true

		topping, ok := entry.ToppingByID(id)
		if !ok {
			return LineItem{}, fmt.Errorf("%w: %q", ErrUnknownTopping, id)
		}
		toppings = append(toppings, topping)
	}

	return LineItem{
		Item:       entry,
		Quantity:   quantity,
		SpiceLevel: spiceLevel,
		Toppings:   toppings,
		Notes:      notes,
	}, nil
}

// UnitPrice is the entry price plus the selected toppings.
func (li LineItem) UnitPrice() int64 {
	price := li.Item.Price
	for _, t := range li.Toppings {
		price += t.Price
	}
	return price
}

func (li LineItem) Total() int64 {
	return li.UnitPrice() * int64(li.Quantity)
}

func (li LineItem) clone() LineItem {
	out := li
	out.Toppings = append([]catalog.Topping(nil), li.Toppings...)
	out.Item.SpiceLevels = append([]string(nil), li.Item.SpiceLevels...)
	out.Item.Toppings = append([]catalog.Topping(nil), li.Item.Toppings...)
	return out
}

// Ledger is the in-memory ordered cart for one user. It is never persisted:
// a restart drops any unfinished cart, matching the original storefront.
type Ledger struct {
	mu    sync.Mutex
	items []LineItem
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Add appends the item. Two additions of an identical configuration stay two
// separate entries; merging would lose per-entry notes.
func (l *Ledger) Add(item LineItem) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, item)
}

// Remove drops the item at index. An out-of-range index is ignored.
func (l *Ledger) Remove(index int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
}

func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
}

// Consume removes the first n items, the prefix a caller snapshotted earlier.
// Items added after that snapshot stay in the cart.
func (l *Ledger) Consume(n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 {
		return
	}
	if n >= len(l.items) {
		l.items = nil
		return
	}
	l.items = append([]LineItem(nil), l.items[n:]...)
}

// Total recomputes the cart price on every call. Carts are small; caching
// would only add invalidation work.
func (l *Ledger) Total() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var total int64
	for _, item := range l.items {
		total += item.Total()
	}
	return total
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Items returns a shallow copy of the line-item sequence.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Snapshot returns a deep value-copy of the sequence, safe to store in an
// order regardless of what happens to the cart afterwards.
func (l *Ledger) Snapshot() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, 0, len(l.items))
	for _, item := range l.items {
		out = append(out, item.clone())
	}
	return out
}
