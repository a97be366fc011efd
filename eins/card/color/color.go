package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Color of a card. The zero value None marks wild cards and the absence of a color wish.
type Color uint8

const (
	None Color = iota
	Red
	Blue
	Green
	Orange
)

// All lists the playable colors in catalog order.
var All = []Color{Red, Blue, Green, Orange}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var colors = map[Color]colorStruct{
	None: {
		name:          "none",
		colorFunction: color.New(color.FgHiWhite).SprintfFunc(),
	},
	Red: {
		name:          "red",
		colorFunction: color.New(color.FgHiRed).SprintfFunc(),
	},
	Blue: {
		name:          "blue",
		colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
	},
	Green: {
		name:          "green",
		colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
	},
	Orange: {
		name:          "orange",
		colorFunction: color.New(color.FgYellow).SprintfFunc(),
	},
}

var Stdout io.Writer = color.Output

func (c Color) Name() string {
	if s, ok := colors[c]; ok {
		return s.name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	s, ok := colors[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return s.colorFunction(format, args...)
}

func (c Color) String() string {
	return c.Paint(c.Name())
}

func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range All {
		if colors[c].name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
