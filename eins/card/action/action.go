package action

import "fmt"

type Action interface {
	String() string
}

// Draw is a pending draw penalty or forced draw.
type Draw uint8

const (
	DrawOne Draw = iota + 1
	DrawTwo
	DrawFour
)

func (a Draw) Amount() int {
	switch a {
	case DrawOne:
		return 1
	case DrawTwo:
		return 2
	case DrawFour:
		return 4
	}
	panic(fmt.Sprintf("unknown draw action %d", uint8(a)))
}

func (a Draw) String() string {
	switch a {
	case DrawOne:
		return "DrawOne"
	case DrawTwo:
		return "DrawTwo"
	case DrawFour:
		return "DrawFour"
	}
	return fmt.Sprintf("Draw(%d)", uint8(a))
}

// Sum adds up the amounts of all given draw actions.
func Sum(actions []Draw) int {
	total := 0
	for _, a := range actions {
		total += a.Amount()
	}
	return total
}

type SkipTurnAction struct{}

func (SkipTurnAction) String() string {
	return "Skip"
}

type ReverseTurnsAction struct{}

func (ReverseTurnsAction) String() string {
	return "Reverse"
}

type PickColorAction struct{}

func (PickColorAction) String() string {
	return "PickColor"
}

var (
	Skip      Action = SkipTurnAction{}
	Reverse   Action = ReverseTurnsAction{}
	PickColor Action = PickColorAction{}
)
