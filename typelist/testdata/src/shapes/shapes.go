package shapes

import "fmt"

type Shape interface {
	Area() float64
}

type Circle struct {
	R float64
}

func (c Circle) Area() float64 { return 3 * c.R * c.R }

func (c Circle) String() string { return fmt.Sprintf("circle(%g)", c.R) }

type Square struct {
	S float64
}

func (s *Square) Area() float64 { return s.S * s.S }

// Tagged only gets String and Area through Circle.
type Tagged struct {
	Circle
	Tag string
}

type Meters float64

func (m Meters) String() string { return fmt.Sprintf("%gm", float64(m)) }

type Count int

type Round = Circle

type Pair[T any] struct {
	A, B T
}

func Describe(s Shape) string {
	type summary struct{ area float64 }
	return fmt.Sprint(summary{s.Area()})
}
