package models

// NumerologyNumber is a fully reduced Vedic root number. Valid digits are
// 1 through 9; reduction from birth dates happens upstream.
type NumerologyNumber struct {
	Digit int `json:"digit"`
	// Kind distinguishes mulanka (birth day) from bhagyanka (full date)
	Kind NumerologyKind `json:"kind,omitempty"`
}

// NumerologyKind labels the origin of a root number
type NumerologyKind string

const (
	NumerologyMulanka   NumerologyKind = "mulanka"
	NumerologyBhagyanka NumerologyKind = "bhagyanka"
)

// Valid reports whether the digit is a legal root number
func (n NumerologyNumber) Valid() bool {
	return n.Digit >= 1 && n.Digit <= 9
}
