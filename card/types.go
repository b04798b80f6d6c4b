// This file declares Suit, Rank, Color and the package's sentinel errors.
package card

import "errors"

// Sentinel errors for card validation.
var (
	// ErrBadSuit indicates a Suit outside the four standard suits.
	ErrBadSuit = errors.New("card: unknown suit")

	// ErrBadRank indicates a Rank outside Ace..King.
	ErrBadRank = errors.New("card: rank out of range")
)

// Suit identifies one of the four standard suits.
type Suit int

const (
	// Clubs ♣ (black).
	Clubs Suit = iota + 1
	// Spades ♠ (black).
	Spades
	// Hearts ♥ (red).
	Hearts
	// Diamonds ♦ (red).
	Diamonds
)

// suitGlyphs maps a Suit to its one-rune text; index 0 is unused.
var suitGlyphs = []string{"", "♣", "♠", "♥", "♦"}

// String returns the suit glyph, or "?" for an invalid suit.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitGlyphs[s]
}

// Valid reports whether s is one of the four standard suits.
func (s Suit) Valid() bool { return s >= Clubs && s <= Diamonds }

// Color returns Red for hearts/diamonds and Black for clubs/spades.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank identifies a card rank. Ranks order naturally: Ace is lowest (1),
// King is highest (13), so "one rank lower" is plain integer arithmetic.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// rankNames maps a Rank to its short text; index 0 is unused.
var rankNames = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// String returns the short rank text ("A", "2", …, "10", "J", "Q", "K"),
// or "?" for an invalid rank.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankNames[r]
}

// Valid reports whether r is within Ace..King.
func (r Rank) Valid() bool { return r >= Ace && r <= King }

// Color is the ink color of a suit: Black or Red.
type Color int

const (
	// Black covers clubs and spades.
	Black Color = iota
	// Red covers hearts and diamonds.
	Red
)

// String returns "black" or "red".
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}
