package game

type Direction int8

const (
	CounterClockwise Direction = -1
	Clockwise        Direction = 1
)

func (d Direction) String() string {
	if d == CounterClockwise {
		return "counter-clockwise"
	}
	return "clockwise"
}

// Cycler walks player indexes in the current direction, wrapping at both ends.
type Cycler struct {
	count     int
	current   int
	direction Direction
}

func NewCycler(count int) *Cycler {
	return &Cycler{
		count:     count,
		current:   0,
		direction: Clockwise,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() Direction {
	return c.direction
}

func (c *Cycler) Next() int {
	c.current = c.Peek()
	return c.current
}

// Peek returns the index Next would move to.
func (c *Cycler) Peek() int {
	return (c.current + int(c.direction) + c.count) % c.count
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case Clockwise:
		c.direction = CounterClockwise
	case CounterClockwise:
		c.direction = Clockwise
	}
}
