package shapes

type fixture struct {
	name string
}

var _ = fixture{name: "unit"}
