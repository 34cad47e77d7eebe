package tp

import "strconv"

type (
	// Type is a result type tag of an instruction.
	// Implementations must be comparable.
	Type interface {
		Size() int
		String() string
	}

	Untyped struct{}

	Int struct {
		Bits   int16
		Signed bool
	}
)

var I32 Type = Int{Bits: 32, Signed: true}

func (x Untyped) Size() int      { return 0 }
func (x Untyped) String() string { return "untyped" }

func (x Int) Size() int {
	return int(x.Bits) / 8
}

func (x Int) String() string {
	p := "u"
	if x.Signed {
		p = "i"
	}

	return p + strconv.Itoa(int(x.Bits))
}

// IsUntyped reports whether t carries no type information.
func IsUntyped(t Type) bool {
	switch t.(type) {
	case nil, Untyped:
		return true
	}

	return false
}
