package card_test

import (
	"testing"

	"github.com/katalvlaran/solitaire/card"
	"github.com/stretchr/testify/assert"
)

// TestSuit_ColorSplit verifies the red/black partition of the four suits.
func TestSuit_ColorSplit(t *testing.T) {
	assert.Equal(t, card.Black, card.Clubs.Color(), "clubs are black")
	assert.Equal(t, card.Black, card.Spades.Color(), "spades are black")
	assert.Equal(t, card.Red, card.Hearts.Color(), "hearts are red")
	assert.Equal(t, card.Red, card.Diamonds.Color(), "diamonds are red")
}

// TestCard_String checks the rank+glyph rendering, including the
// two-character "10" rank.
func TestCard_String(t *testing.T) {
	assert.Equal(t, "Q♥", card.Card{Suit: card.Hearts, Rank: card.Queen}.String())
	assert.Equal(t, "10♣", card.Card{Suit: card.Clubs, Rank: card.Ten}.String())
	assert.Equal(t, "A♠", card.Card{Suit: card.Spades, Rank: card.Ace}.String())
	assert.Equal(t, "K♦", card.Card{Suit: card.Diamonds, Rank: card.King}.String())
}

// TestCard_Validate covers valid cards and both out-of-range fields.
func TestCard_Validate(t *testing.T) {
	ok := card.Card{Suit: card.Hearts, Rank: card.Five}
	assert.NoError(t, ok.Validate())

	badSuit := card.Card{Suit: card.Suit(9), Rank: card.Five}
	assert.ErrorIs(t, badSuit.Validate(), card.ErrBadSuit)

	badRank := card.Card{Suit: card.Hearts, Rank: card.Rank(0)}
	assert.ErrorIs(t, badRank.Validate(), card.ErrBadRank)
}

// TestCard_ValueEquality confirms cards compare by value, so identical
// pairs are interchangeable wherever cards are looked up.
func TestCard_ValueEquality(t *testing.T) {
	a := card.Card{Suit: card.Spades, Rank: card.Seven}
	b := card.Card{Suit: card.Spades, Rank: card.Seven}
	assert.True(t, a == b, "same (suit, rank) must be the same card")
}

// TestRank_InvalidString ensures out-of-range enums render as "?" rather
// than panicking on the lookup tables.
func TestRank_InvalidString(t *testing.T) {
	assert.Equal(t, "?", card.Rank(14).String())
	assert.Equal(t, "?", card.Suit(0).String())
}
