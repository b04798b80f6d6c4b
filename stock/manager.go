package stock

import (
	"fmt"

	"github.com/katalvlaran/solitaire/card"
)

// Summary markers for the two piles.
const (
	// RecycleMarker marks an exhausted stock that can be rebuilt from the waste.
	RecycleMarker = "[↻]"
	// EmptyMarker marks a pile with no cards (and, for the stock, no refill).
	EmptyMarker = "[ ]"
)

// Manager owns the stock and waste piles. stock[0] is the next card
// drawn; the last element of waste is the visible, most recent discard.
type Manager struct {
	stock []card.Card
	waste []card.Card
	subs  []func()
}

// NewManager seeds the stock with the undealt remainder of a shuffled
// deck, in draw order. The waste starts empty.
func NewManager(initial []card.Card) *Manager {
	m := &Manager{}
	m.stock = append(m.stock, initial...)
	return m
}

// Subscribe registers fn to run after every state-changing Click.
// Handlers run synchronously and in registration order. Nil is ignored.
func (m *Manager) Subscribe(fn func()) {
	if fn != nil {
		m.subs = append(m.subs, fn)
	}
}

func (m *Manager) notify() {
	for _, fn := range m.subs {
		fn()
	}
}

// Click handles the single stock gesture and reports whether anything
// changed. With cards in the stock it draws one onto the waste; with an
// empty stock and a non-empty waste it recycles; with both piles empty
// it is a no-op. Subscribers are notified exactly once per state change
// and never for the no-op.
func (m *Manager) Click() bool {
	switch {
	case len(m.stock) > 0:
		m.waste = append(m.waste, m.stock[0])
		m.stock = m.stock[1:]
	case len(m.waste) > 0:
		// Turning the waste over as one block: its bottom card (the
		// earliest discard) ends up on top of the new stock, so the next
		// pass draws in the original order again.
		m.stock = make([]card.Card, len(m.waste))
		copy(m.stock, m.waste)
		m.waste = m.waste[:0]
	default:
		return false
	}
	m.notify()
	return true
}

// TakeWaste removes and returns the visible top of the waste, the one
// card a player may pick up from this half of the layout. The caller
// then owns the card and typically offers it to a tableau column.
// Returns ok=false and mutates nothing when the waste is empty; fires
// the change notification once on success.
func (m *Manager) TakeWaste() (card.Card, bool) {
	top, ok := m.TopWaste()
	if !ok {
		return card.Card{}, false
	}
	m.waste = m.waste[:len(m.waste)-1]
	m.notify()
	return top, true
}

// TopWaste returns the visible top of the waste, or ok=false when the
// waste is empty.
func (m *Manager) TopWaste() (card.Card, bool) {
	if len(m.waste) == 0 {
		return card.Card{}, false
	}
	return m.waste[len(m.waste)-1], true
}

// StockCount returns the number of face-down cards left to draw.
func (m *Manager) StockCount() int { return len(m.stock) }

// WasteCount returns the number of discarded cards.
func (m *Manager) WasteCount() int { return len(m.waste) }

// StockSummary returns the stock's display text: a remaining-count
// marker like "[24]", RecycleMarker when a Click would recycle, or
// EmptyMarker when both piles are out of cards.
func (m *Manager) StockSummary() string {
	switch {
	case len(m.stock) > 0:
		return fmt.Sprintf("[%d]", len(m.stock))
	case len(m.waste) > 0:
		return RecycleMarker
	default:
		return EmptyMarker
	}
}

// WasteSummary returns the top discard's text, or EmptyMarker.
func (m *Manager) WasteSummary() string {
	if top, ok := m.TopWaste(); ok {
		return top.String()
	}
	return EmptyMarker
}
