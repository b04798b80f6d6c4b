package card

import "fmt"

// Card is an immutable (Suit, Rank) pair. Cards are compared with ==;
// there is no identity beyond the pair itself.
type Card struct {
	Suit Suit
	Rank Rank
}

// Color returns the card's ink color, derived from its suit.
func (c Card) Color() Color { return c.Suit.Color() }

// String returns the rank followed by the suit glyph, e.g. "Q♥" or "10♣".
func (c Card) String() string { return c.Rank.String() + c.Suit.String() }

// Validate returns ErrBadSuit or ErrBadRank if either field is outside
// the standard range, nil otherwise.
func (c Card) Validate() error {
	if !c.Suit.Valid() {
		return fmt.Errorf("%w: %d", ErrBadSuit, int(c.Suit))
	}
	if !c.Rank.Valid() {
		return fmt.Errorf("%w: %d", ErrBadRank, int(c.Rank))
	}
	return nil
}
