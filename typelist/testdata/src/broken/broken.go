package broken

type Broken struct{}

var count int = "three"
