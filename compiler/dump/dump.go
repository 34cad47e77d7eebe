package dump

import (
	"github.com/nikandfor/hacked/hfmt"

	"github.com/slowlang/slowir/compiler/ir"
	"github.com/slowlang/slowir/compiler/tp"
)

const Header = `<ID> <Type> <Mnemonic> <Value | Inputs> -> <Users>
`

// Graph appends blocks in ascending id order.
// End block goes last as a footer.
func Graph(b []byte, g *ir.Graph) []byte {
	for _, id := range g.BlockIDs() {
		if id == ir.EndBlock {
			continue
		}

		bb, _ := g.Block(id)

		b = app(b, 0, "BB%d:\n", id)
		b = Block(b, bb, 1)
		b = append(b, '\n')
	}

	b = app(b, 0, "BB%d\n", ir.EndBlock)

	return b
}

// Block appends instructions in emission order.
func Block(b []byte, bb *ir.Block, d int) []byte {
	bb.Range(func(id ir.InstID, x ir.Inst) bool {
		b = app(b, d, "%d ", id)
		b = Inst(b, x)
		b = append(b, '\n')

		return true
	})

	return b
}

func Inst(b []byte, x ir.Inst) []byte {
	c := x.Common()

	b = app(b, 0, "%v %v", typ(c.Type), x.Op())

	switch x := x.(type) {
	case *ir.Constant:
		b = app(b, 0, " %d", x.Value)
	default:
		for i, in := range x.In() {
			if i != 0 {
				b = append(b, ',')
			}

			b = app(b, 0, " %v", ref(in))
		}
	}

	b = append(b, " ->"...)

	c.RangeUsers(func(id ir.InstID) bool {
		b = app(b, 0, " %d", id)
		return true
	})

	return b
}

func typ(t tp.Type) string {
	if tp.IsUntyped(t) {
		return "-"
	}

	return t.String()
}

func ref(id ir.InstID) any {
	if id == ir.NoInst {
		return "_"
	}

	return uint32(id)
}

func app(b []byte, d int, f string, args ...any) []byte {
	const tabs = "\t\t\t\t\t\t\t\t\t\t\t\t\t\t\t"
	b = append(b, tabs[:d]...)
	b = hfmt.Appendf(b, f, args...)
	return b
}
