package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/solitaire/card"
)

// Sentinel errors for deck operations.
var (
	// ErrNilRand indicates Shuffle was called without a random source.
	ErrNilRand = errors.New("deck: rand source is nil")

	// ErrDeckSize indicates a deck that does not hold exactly 52 cards.
	ErrDeckSize = errors.New("deck: standard deck must hold exactly 52 cards")

	// ErrDuplicateCard indicates a (Suit, Rank) pair appearing more than once.
	ErrDuplicateCard = errors.New("deck: duplicate card")
)

// Size is the number of cards in a standard deck.
const Size = 52

// Deck is an ordered sequence of cards. Index 0 is dealt first.
type Deck []card.Card

// New returns the 52 suit×rank combinations in canonical order
// (suits outer, ranks inner). The order is irrelevant in play since a
// deck is shuffled before dealing, but it is stable for tests.
func New() Deck {
	d := make(Deck, 0, Size)
	for s := card.Clubs; s <= card.Diamonds; s++ {
		for r := card.Ace; r <= card.King; r++ {
			d = append(d, card.Card{Suit: s, Rank: r})
		}
	}
	return d
}

// Shuffle permutes d in place with the Fisher–Yates algorithm: for each
// i from len(d)-1 down to 1, swap d[i] with d[k] for a uniform k in [0, i].
// Given a uniform source this yields a uniform permutation. Shuffle keeps
// no state between calls and may be invoked repeatedly on the same deck.
//
// Returns ErrNilRand if rng is nil; d is untouched in that case.
func Shuffle(d Deck, rng *rand.Rand) error {
	if rng == nil {
		return ErrNilRand
	}
	for i := len(d) - 1; i > 0; i-- {
		k := rng.Intn(i + 1)
		d[i], d[k] = d[k], d[i]
	}
	return nil
}

// Verify checks deck integrity: exactly Size cards, every card valid,
// and no (Suit, Rank) pair repeated. Value-based card lookup elsewhere
// in the module is unambiguous only for decks that pass Verify.
func Verify(d Deck) error {
	if len(d) != Size {
		return fmt.Errorf("%w: got %d", ErrDeckSize, len(d))
	}
	seen := make(map[card.Card]struct{}, Size)
	for _, c := range d {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
