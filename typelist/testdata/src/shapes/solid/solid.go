package solid

type Cube struct {
	Edge float64
}

func (c Cube) Volume() float64 { return c.Edge * c.Edge * c.Edge }
