package card

import (
	"fmt"

	"github.com/ratel-online/eins/eins/card/action"
	"github.com/ratel-online/eins/eins/card/color"
)

type Card interface {
	Actions() []action.Action
	Color() color.Color
	Symbol() Symbol
	Wild() bool
	Equal(other Card) bool
	String() string
}

type Symbol uint8

const (
	Zero Symbol = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	DrawTwo
	Reverse
	Skip
	ChooseColor
	DrawFour
)

func (s Symbol) Number() (int, bool) {
	if s <= Nine {
		return int(s), true
	}
	return 0, false
}

func (s Symbol) Wild() bool {
	return s == ChooseColor || s == DrawFour
}

func (s Symbol) String() string {
	if n, ok := s.Number(); ok {
		return fmt.Sprintf("[%d]", n)
	}
	switch s {
	case DrawTwo:
		return "+2!"
	case Reverse:
		return "<=>"
	case Skip:
		return "(/)"
	case ChooseColor:
		return "(*)"
	case DrawFour:
		return "+4!"
	}
	return fmt.Sprintf("symbol(%d)", uint8(s))
}

func actionsFor(s Symbol) []action.Action {
	switch s {
	case DrawTwo:
		return []action.Action{action.DrawTwo}
	case Reverse:
		return []action.Action{action.Reverse}
	case Skip:
		return []action.Action{action.Skip}
	case ChooseColor:
		return []action.Action{action.PickColor}
	case DrawFour:
		return []action.Action{action.PickColor, action.DrawFour}
	}
	return []action.Action{}
}
