// Package deck builds, shuffles, and verifies the standard 52-card deck.
//
// What:
//
//   - New — every (Suit, Rank) combination exactly once, canonical order.
//   - Shuffle — in-place Fisher–Yates over an injected *rand.Rand.
//   - Verify — integrity check: exactly 52 valid cards, no duplicates.
//
// Why:
//
//   - A deck exists only transiently: it is built, shuffled, and dealt
//     into columns and stock at game start, then discarded. Shuffle takes
//     the random source as an argument so a deal is reproducible from a
//     seed and the package holds no global state between calls.
//
// Complexity:
//
//   - New:     O(52) time, O(52) memory.
//   - Shuffle: O(n) time, O(1) extra memory; uniform over all n! orderings
//     given a uniform source.
//   - Verify:  O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrNilRand: Shuffle was given a nil random source.
//   - ErrDeckSize: Verify input is not exactly 52 cards.
//   - ErrDuplicateCard: Verify found a repeated (Suit, Rank) pair.
package deck
