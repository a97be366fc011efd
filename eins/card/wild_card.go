package card

import (
	"fmt"

	"github.com/ratel-online/eins/eins/card/action"
	"github.com/ratel-online/eins/eins/card/color"
)

type WildCard struct {
	symbol Symbol
}

func NewWildCard(symbol Symbol) WildCard {
	if !symbol.Wild() {
		panic(fmt.Sprintf("wild card with color symbol %s", symbol))
	}
	return WildCard{symbol: symbol}
}

func (c WildCard) Actions() []action.Action {
	return actionsFor(c.symbol)
}

func (c WildCard) Color() color.Color {
	return color.None
}

func (c WildCard) Symbol() Symbol {
	return c.symbol
}

func (c WildCard) Wild() bool {
	return true
}

func (c WildCard) Equal(other Card) bool {
	otherWildCard, typeMatched := other.(WildCard)
	return typeMatched && c.symbol == otherWildCard.symbol
}

func (c WildCard) String() string {
	return c.symbol.String()
}
