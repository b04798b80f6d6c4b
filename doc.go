// Package solitaire is an in-memory rule engine for Klondike Solitaire —
// the deck, the seven tableau columns, and the stock/waste piles, with
// every legal-move rule enforced at the API boundary.
//
// 🚀 What is solitaire?
//
//	A small, synchronous, presentation-free library that brings together:
//		• Card model: immutable (Suit, Rank) values with derived color
//		• Deck builder: canonical 52-card enumeration + seeded Fisher–Yates shuffle
//		• Tableau columns: face-down/face-up piles, run validation, flip-on-drain
//		• Stock & waste: one-card draw and full-pile recycle, as one gesture
//		• Game assembly: the classic 1..7 deal plus a 24-card stock
//		• Render helpers: colorized card/pile text for terminal front-ends
//
// ✨ Why choose solitaire?
//
//   - Rule-complete – illegal moves are clean no-ops, never panics or errors
//   - Deterministic – inject your own rand source and replay any deal
//   - Observable – subscribe to per-column and per-pile change callbacks
//   - Pure Go core – no rendering, no input handling, no hidden state
//
// Under the hood, everything is organized under six subpackages:
//
//	card/     — Suit, Rank, Color and the immutable Card value
//	deck/     — standard-deck construction, shuffling, integrity checks
//	tableau/  — the column state machine (place, remove-run, flip)
//	stock/    — the stock/waste state machine (draw, recycle)
//	klondike/ — NewGame: shuffle, deal, and wire the piles together
//	render/   — display strings for UIs (the only package that colors text)
//
// Quick ASCII example:
//
//	    [24] [ ]      ·  the stock holds 24 face-down cards, waste is empty
//	    A♣ 3♣ 6♣ 10♣  ·  seven columns, one card flipped on each
//	    2♠ 8♠ 2♥
//
// The engine is single-threaded by design: every operation runs to
// completion on the caller's goroutine and notifies subscribers before
// it returns. Dive into the per-package docs for the exact state machines.
//
//	go get github.com/katalvlaran/solitaire
package solitaire
