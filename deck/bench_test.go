package deck_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/solitaire/deck"
)

// BenchmarkShuffle measures a full Fisher–Yates pass over 52 cards.
func BenchmarkShuffle(b *testing.B) {
	d := deck.New()
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := deck.Shuffle(d, rng); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNewAndVerify measures deck construction plus the integrity scan.
func BenchmarkNewAndVerify(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := deck.Verify(deck.New()); err != nil {
			b.Fatal(err)
		}
	}
}
