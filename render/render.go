package render

import (
	colorize "github.com/fatih/color"

	"github.com/katalvlaran/solitaire/card"
	"github.com/katalvlaran/solitaire/stock"
	"github.com/katalvlaran/solitaire/tableau"
)

// CardString returns c's text in its ink color: red suits red, black
// suits bright white.
func CardString(c card.Card) string {
	if c.Color() == card.Red {
		return colorize.HiRedString("%s", c)
	}
	return colorize.HiWhiteString("%s", c)
}

// ColumnLine returns the display line for one column: the colorized top
// card, or the dimmed face-down/empty marker.
func ColumnLine(col *tableau.Column) string {
	if top, ok := col.TopCard(); ok {
		return CardString(top)
	}
	return colorize.HiBlackString("%s", col.Summary())
}

// StockLine returns the display line for the stock/waste pair: the
// dimmed stock marker followed by the colorized top discard (or the
// dimmed empty marker).
func StockLine(m *stock.Manager) string {
	left := colorize.HiBlackString("%s", m.StockSummary())
	if top, ok := m.TopWaste(); ok {
		return left + " " + CardString(top)
	}
	return left + " " + colorize.HiBlackString("%s", m.WasteSummary())
}

// GameLines renders a whole layout, stock/waste first and then each
// column, one line per pile group.
func GameLines(m *stock.Manager, cols []*tableau.Column) []string {
	out := make([]string, 0, len(cols)+1)
	out = append(out, StockLine(m))
	for _, col := range cols {
		out = append(out, ColumnLine(col))
	}
	return out
}
