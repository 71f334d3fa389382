// Package cart holds the shopping cart state machine. State only ever moves
// through the four transitions (add, remove, set quantity, clear); each one
// is a pure function over the previous state, and the derived total is
// recomputed from scratch after every transition so it can never drift from
// the item list.
package cart

import (
	"encoding/json"
	"errors"
)

// ErrInvalidQuantity is returned when an add carries a non-positive quantity.
var ErrInvalidQuantity = errors.New("cart: quantity must be a positive integer")

// Item is one line of the cart: a product snapshot plus a quantity >= 1.
// An item with quantity <= 0 must never exist; the transitions collapse it
// to a removal instead.
type Item struct {
	ProductID uint    `json:"product_id"`
	Slug      string  `json:"slug"`
	NameFr    string  `json:"name_fr"`
	NameAr    string  `json:"name_ar"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
}

// State is the full cart: items in insertion order (first add wins the
// position) plus the derived total.
type State struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// IsEmpty reports whether the cart holds no items.
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

func emptyState() State {
	return State{Items: []Item{}}
}

func computeTotal(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// addItem merges quantity into an existing line for the same product id, or
// appends a new line at the end. The input state is never mutated.
func addItem(s State, item Item, qty int) (State, error) {
	if qty <= 0 {
		return s, ErrInvalidQuantity
	}

	items := make([]Item, len(s.Items))
	copy(items, s.Items)

	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID {
			items[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		item.Quantity = qty
		items = append(items, item)
	}

	return State{Items: items, Total: computeTotal(items)}, nil
}

// removeItem filters out the line matching productID. A miss is a no-op.
func removeItem(s State, productID uint) State {
	items := make([]Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	return State{Items: items, Total: computeTotal(items)}
}

// updateQuantity sets the line's quantity to an absolute value. A value <= 0
// behaves exactly like removeItem; an unknown product id is a no-op.
func updateQuantity(s State, productID uint, qty int) State {
	if qty <= 0 {
		return removeItem(s, productID)
	}

	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			break
		}
	}
	return State{Items: items, Total: computeTotal(items)}
}

// encodeState serializes a state snapshot for the storage collaborator.
func encodeState(s State) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeState rehydrates a snapshot. Any parse failure degrades to the empty
// cart — a corrupt snapshot is treated as absence, never as a fatal error.
func decodeState(snapshot string) State {
	if snapshot == "" {
		return emptyState()
	}
	var s State
	if err := json.Unmarshal([]byte(snapshot), &s); err != nil {
		return emptyState()
	}
	if s.Items == nil {
		s.Items = []Item{}
	}
	// Snapshots from older writers may carry a stale total.
	s.Total = computeTotal(s.Items)
	return s
}
