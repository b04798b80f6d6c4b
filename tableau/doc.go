// Package tableau implements the column state machine at the heart of
// the Klondike rules.
//
// What:
//
//   - Column owns two ordered piles: hidden (face-down) and faceUp
//     (face-up, last element on top). NewColumn flips exactly one card,
//     so a dealt column is never face-down only.
//   - CanPlace / TryPlace — a card may land on an empty column only if it
//     is a King, otherwise it must be the opposite color of, and exactly
//     one rank below, the top card.
//   - TryRemoveRun — removes a face-up suffix rooted at a given card, but
//     only if every adjacent pair in that suffix is a valid descending
//     alternating-color link (all-or-nothing). Draining the face-up pile
//     flips one hidden card up.
//
// Why:
//
//   - Illegal moves are everyday input, not faults: TryPlace returns
//     false and TryRemoveRun returns nil, with no mutation and no
//     notification. Errors are reserved for nothing — this package has
//     no error surface at all.
//
// State machine per column:
//
//	Empty ──TryPlace(King)──▶ HasFaceUp
//	HasFaceUp ──TryRemoveRun drains, hidden left──▶ HasFaceUp (flip)
//	HasFaceUp ──TryRemoveRun drains, hidden empty──▶ Empty
//
// Subscribers registered with Subscribe are invoked synchronously, in
// registration order, after each successful mutation and before the
// mutating call returns. The package is single-threaded by contract:
// callers drive it from one goroutine.
package tableau
