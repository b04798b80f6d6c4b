package tableau

import "github.com/katalvlaran/solitaire/card"

// Summary markers for columns without a visible card.
const (
	// FaceDownMarker marks a column whose top card is face-down.
	FaceDownMarker = "▓▓"
	// EmptyMarker marks a column with no cards at all.
	EmptyMarker = "[ ]"
)

// Column is one of the seven tableau columns. Its identity is the fixed
// index assigned at construction. Both piles are ordered bottom→top, so
// the last element of faceUp is the visible top card.
type Column struct {
	index  int
	hidden []card.Card
	faceUp []card.Card
	subs   []func(index int)
}

// NewColumn builds column index from the dealt cards: all but the last
// stay hidden, the last is flipped face-up. An empty deal yields an
// empty column.
func NewColumn(index int, initial []card.Card) *Column {
	col := &Column{index: index}
	if n := len(initial); n > 0 {
		col.hidden = append(col.hidden, initial[:n-1]...)
		col.faceUp = append(col.faceUp, initial[n-1])
	}
	return col
}

// Index returns the column's fixed position, 0..6.
func (c *Column) Index() int { return c.index }

// Subscribe registers fn to run after every successful mutation of this
// column. Handlers run synchronously, in registration order, and receive
// the column index. A nil fn is ignored.
func (c *Column) Subscribe(fn func(index int)) {
	if fn != nil {
		c.subs = append(c.subs, fn)
	}
}

// notify fires all subscribers once, after the mutation has committed.
func (c *Column) notify() {
	for _, fn := range c.subs {
		fn(c.index)
	}
}

// TopCard returns the visible top card, or ok=false if no card is face-up.
func (c *Column) TopCard() (card.Card, bool) {
	if len(c.faceUp) == 0 {
		return card.Card{}, false
	}
	return c.faceUp[len(c.faceUp)-1], true
}

// HiddenCount returns the number of face-down cards.
func (c *Column) HiddenCount() int { return len(c.hidden) }

// FaceUp returns a copy of the face-up pile, bottom→top. Mutating the
// returned slice does not affect the column.
func (c *Column) FaceUp() []card.Card {
	return append([]card.Card(nil), c.faceUp...)
}

// CanPlace reports whether cd may legally land on this column: a King on
// an empty face-up pile, otherwise opposite color and exactly one rank
// below the top card. Side-effect free.
func (c *Column) CanPlace(cd card.Card) bool {
	top, ok := c.TopCard()
	if !ok {
		return cd.Rank == card.King
	}
	return linked(top, cd)
}

// TryPlace appends cd to the face-up pile if CanPlace allows it, fires
// the change notification, and returns true. An illegal card is a pure
// no-op returning false. The caller must already have removed cd from
// its previous owner; cross-container disjointness is not re-checked here.
func (c *Column) TryPlace(cd card.Card) bool {
	if !c.CanPlace(cd) {
		return false
	}
	c.faceUp = append(c.faceUp, cd)
	c.notify()
	return true
}

// TryRemoveRun removes and returns the face-up suffix rooted at start,
// ordered bottom→top as it lay in the column. The whole suffix must form
// one contiguous descending alternating-color run; otherwise — or if
// start is not face-up in this column — nothing is removed and nil is
// returned. If the removal drains the face-up pile and hidden cards
// remain, exactly one hidden card is flipped up. Fires the change
// notification once on success.
//
// start is located by value. With deck integrity guaranteed (see
// deck.Verify) a (Suit, Rank) pair occurs at most once, so the first
// match is the only match.
func (c *Column) TryRemoveRun(start card.Card) []card.Card {
	at := -1
	for i, cd := range c.faceUp {
		if cd == start {
			at = i
			break
		}
	}
	if at < 0 {
		return nil
	}
	for i := at; i < len(c.faceUp)-1; i++ {
		if !linked(c.faceUp[i], c.faceUp[i+1]) {
			return nil
		}
	}

	run := append([]card.Card(nil), c.faceUp[at:]...)
	c.faceUp = c.faceUp[:at]
	if len(c.faceUp) == 0 && len(c.hidden) > 0 {
		last := len(c.hidden) - 1
		c.faceUp = append(c.faceUp, c.hidden[last])
		c.hidden = c.hidden[:last]
	}
	c.notify()
	return run
}

// Summary returns the display text for this column: the top face-up
// card, FaceDownMarker if only hidden cards remain, or EmptyMarker.
func (c *Column) Summary() string {
	if top, ok := c.TopCard(); ok {
		return top.String()
	}
	if len(c.hidden) > 0 {
		return FaceDownMarker
	}
	return EmptyMarker
}

// linked reports whether next may sit directly on prev inside a tableau
// run: opposite color, exactly one rank lower.
func linked(prev, next card.Card) bool {
	return next.Color() != prev.Color() && next.Rank == prev.Rank-1
}
