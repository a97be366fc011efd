package card

import (
	"fmt"

	"github.com/ratel-online/eins/eins/card/action"
	"github.com/ratel-online/eins/eins/card/color"
)

// ColorCard is a number or action card of one of the four colors.
type ColorCard struct {
	color  color.Color
	symbol Symbol
}

func NewColorCard(color color.Color, symbol Symbol) ColorCard {
	if symbol.Wild() {
		panic(fmt.Sprintf("color card with wild symbol %s", symbol))
	}
	return ColorCard{
		color:  color,
		symbol: symbol,
	}
}

func (c ColorCard) Actions() []action.Action {
	return actionsFor(c.symbol)
}

func (c ColorCard) Color() color.Color {
	return c.color
}

func (c ColorCard) Symbol() Symbol {
	return c.symbol
}

func (c ColorCard) Wild() bool {
	return false
}

func (c ColorCard) Equal(other Card) bool {
	otherColorCard, typeMatched := other.(ColorCard)
	return typeMatched && c == otherColorCard
}

func (c ColorCard) String() string {
	return c.color.Paint(c.symbol.String()) + fmt.Sprintf("(%s)", c.color.Name())
}
