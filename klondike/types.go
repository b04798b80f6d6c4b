// This file declares the game options and sentinel errors.
package klondike

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/solitaire/deck"
)

// Sentinel errors for game construction.
var (
	// ErrNilRand indicates WithRand was given a nil random source.
	ErrNilRand = errors.New("klondike: rand source is nil")

	// ErrDeckIntegrity indicates WithDeck was given a deck that fails
	// the standard-deck integrity check.
	ErrDeckIntegrity = errors.New("klondike: deck failed integrity check")
)

// Option configures NewGame via functional arguments. An invalid option
// is recorded internally and surfaced as an error when NewGame runs.
type Option func(*Options)

// Options holds the tunable parameters of a new game.
type Options struct {
	// Rng is the random source used to shuffle. When nil (the default),
	// NewGame seeds one from the wall clock, so every game differs.
	Rng *rand.Rand

	// Deck, when non-nil, is dealt exactly as given: no shuffle happens.
	// It must pass deck.Verify. Intended for tests and replays.
	Deck deck.Deck

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the zero configuration: clock-seeded shuffle,
// no preset deck.
func DefaultOptions() Options {
	return Options{}
}

// WithRand sets the random source for the shuffle. A nil rng is invalid
// and surfaces as ErrNilRand from NewGame.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng == nil {
			o.err = ErrNilRand
			return
		}
		o.Rng = rng
	}
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))):
// the same seed always deals the same game.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rng = rand.New(rand.NewSource(seed))
	}
}

// WithDeck deals the given ordering verbatim instead of shuffling.
// NewGame rejects it with ErrDeckIntegrity unless it is a complete,
// duplicate-free standard deck.
func WithDeck(d deck.Deck) Option {
	return func(o *Options) {
		o.Deck = d
	}
}
