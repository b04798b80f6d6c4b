// Package card defines the immutable playing-card value types shared by
// every other package in the module.
//
// What:
//
//   - Suit — Clubs, Spades, Hearts, Diamonds.
//   - Rank — Ace=1 through King=13.
//   - Color — Black (clubs/spades) or Red (hearts/diamonds), derived from Suit.
//   - Card — a plain (Suit, Rank) pair; comparable with ==, printed as "Q♥".
//
// Why:
//
//   - Cards are values, not objects: no pointer identity, no hidden state.
//     Two cards are the same card exactly when their fields are equal, and
//     the standard deck contains each (Suit, Rank) combination exactly once.
//
// Errors:
//
//   - ErrBadSuit: suit outside Clubs..Diamonds.
//   - ErrBadRank: rank outside Ace..King.
package card
