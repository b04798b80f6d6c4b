package klondike

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/solitaire/deck"
	"github.com/katalvlaran/solitaire/stock"
	"github.com/katalvlaran/solitaire/tableau"
)

// Columns is the number of tableau columns in a Klondike layout.
const Columns = 7

// tableauCards is the portion of the deck dealt across the columns:
// 1+2+…+7 = 28. The remaining 24 cards seed the stock.
const tableauCards = Columns * (Columns + 1) / 2

// Game is one assembled Klondike game. It lives until the caller starts
// a new one; all play goes through Columns and Stock directly.
type Game struct {
	// ID uniquely identifies this game instance, for UI session keying
	// and log correlation. It carries no rule semantics.
	ID string

	// Columns are the seven tableau columns, indexed 0..6 left to right.
	Columns [Columns]*tableau.Column

	// Stock is the stock/waste manager holding the 24 undealt cards.
	Stock *stock.Manager
}

// NewGame builds, shuffles, and deals a fresh game. Column i receives
// i+1 cards with exactly one flipped face-up; the remainder becomes the
// stock in draw order.
func NewGame(opts ...Option) (*Game, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var d deck.Deck
	if o.Deck != nil {
		if err := deck.Verify(o.Deck); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDeckIntegrity, err)
		}
		d = append(deck.Deck(nil), o.Deck...)
	} else {
		rng := o.Rng
		if rng == nil {
			rng = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		d = deck.New()
		if err := deck.Shuffle(d, rng); err != nil {
			return nil, err
		}
	}

	g := &Game{ID: uuid.NewString()}
	next := 0
	for i := 0; i < Columns; i++ {
		n := i + 1
		g.Columns[i] = tableau.NewColumn(i, d[next:next+n])
		next += n
	}
	g.Stock = stock.NewManager(d[tableauCards:])
	return g, nil
}

// Summaries returns the display texts for the whole layout: stock and
// waste first, then the seven columns left to right. A convenience for
// UIs that poll after notifications.
func (g *Game) Summaries() []string {
	out := make([]string, 0, Columns+2)
	out = append(out, g.Stock.StockSummary(), g.Stock.WasteSummary())
	for _, col := range g.Columns {
		out = append(out, col.Summary())
	}
	return out
}
