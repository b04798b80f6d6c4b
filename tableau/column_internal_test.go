package tableau

import (
	"testing"

	"github.com/katalvlaran/solitaire/card"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedFaceUp builds a column with an arbitrary face-up stack, bypassing
// the legality checks the public API enforces. Only tests may do this:
// the refusal paths of TryRemoveRun need stacks the engine itself would
// never produce.
func seedFaceUp(index int, faceUp ...card.Card) *Column {
	return &Column{index: index, faceUp: faceUp}
}

// TestTryRemoveRun_BrokenSequence: faceUp = [K♠ Q♥ 9♠] has a broken link
// above Q♥, so removing at Q♥ is refused all-or-nothing.
func TestTryRemoveRun_BrokenSequence(t *testing.T) {
	col := seedFaceUp(0,
		card.Card{Suit: card.Spades, Rank: card.King},
		card.Card{Suit: card.Hearts, Rank: card.Queen},
		card.Card{Suit: card.Spades, Rank: card.Nine},
	)
	fired := 0
	col.Subscribe(func(int) { fired++ })

	run := col.TryRemoveRun(card.Card{Suit: card.Hearts, Rank: card.Queen})

	assert.Nil(t, run, "a card cannot move unless everything above it forms one valid run")
	assert.Len(t, col.faceUp, 3, "refusal must leave the column untouched")
	assert.Equal(t, 0, fired, "refusal must not notify")
}

// TestTryRemoveRun_SameColorLink: K♠ Q♠ descends in rank but not in
// alternating colors, so the two-card run is refused while the top card
// alone still moves.
func TestTryRemoveRun_SameColorLink(t *testing.T) {
	col := seedFaceUp(0,
		card.Card{Suit: card.Spades, Rank: card.King},
		card.Card{Suit: card.Spades, Rank: card.Queen},
	)

	assert.Nil(t, col.TryRemoveRun(card.Card{Suit: card.Spades, Rank: card.King}))

	run := col.TryRemoveRun(card.Card{Suit: card.Spades, Rank: card.Queen})
	require.Len(t, run, 1, "the topmost card is always a valid one-card run")
	assert.Equal(t, card.Card{Suit: card.Spades, Rank: card.Queen}, run[0])
}
