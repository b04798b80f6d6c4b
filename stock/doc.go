// Package stock implements the stock/waste half of the Klondike layout:
// a face-down draw pile and the face-up discard pile it feeds.
//
// What:
//
//   - Manager owns both piles. Cards only ever move between them, so
//     their combined size is constant for the manager's lifetime.
//   - Click — the single stock gesture: draw one card to the waste while
//     the stock lasts, turn the whole waste back over into the stock when
//     it runs out, do nothing when both piles are empty.
//   - TopWaste / TakeWaste — peek at, or take ownership of, the top
//     discard; the only card a player may pick up from this half.
//
// State machine:
//
//	StockNonEmpty ──Click (draw 1)──▶ StockNonEmpty | StockEmptyWasteNonEmpty
//	StockEmptyWasteNonEmpty ──Click (recycle all)──▶ StockNonEmpty
//	BothEmpty ──Click──▶ BothEmpty (terminal no-op)
//
// Recycling turns the waste pile over as one block: the earliest discard
// becomes the next draw, so a full second pass through the stock repeats
// the first pass's draw order exactly.
//
// Subscribers registered with Subscribe run synchronously, in
// registration order, after a state-changing Click and never after a
// no-op. Single-threaded by contract, like the rest of the module.
package stock
