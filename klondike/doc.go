// Package klondike assembles a playable game from the lower layers:
// build a deck, shuffle it, deal the classic layout, and hand the caller
// the seven tableau columns plus the stock/waste manager.
//
// What:
//
//   - NewGame — deals columns 0..6 with 1..7 cards each (28 in total,
//     one flipped per column) and seeds the stock with the remaining 24.
//   - Options — WithSeed / WithRand inject the random source so a deal
//     is reproducible; WithDeck skips shuffling entirely and deals a
//     caller-supplied ordering after an integrity check.
//   - Game — the assembled state: a uuid instance ID for UIs and logs,
//     Columns, and Stock. Play happens through those two APIs directly;
//     this package adds nothing to the move rules.
//
// Why:
//
//   - The deck is transient: NewGame consumes it during the deal and
//     retains nothing. Each new game builds fresh columns and a fresh
//     manager; the previous game's objects are simply discarded.
//
// Errors:
//
//   - ErrNilRand: WithRand was handed a nil source.
//   - ErrDeckIntegrity: WithDeck was handed a deck that fails deck.Verify.
package klondike
