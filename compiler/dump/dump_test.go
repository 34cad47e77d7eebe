package dump

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/slowir/compiler/ir"
)

func TestGraph(t *testing.T) {
	g := ir.New()
	b := ir.NewBuilder(context.Background(), g)

	// blocks created out of order are still printed ascending
	b.Block(3).
		Add(5).I32()

	b.Start().
		Parameter(1).I32().
		Constant(2).Value(7).I32()

	b.Block(2).
		Add(3).I32().Inputs(1, 2).
		Add(4).I32().Inputs(1, 2)

	b.Select(3).
		Add(6).I32()

	require.NoError(t, b.Err())

	require.NoError(t, g.SetInputs(5, 1, 2))
	require.NoError(t, g.SetInputs(6, 4, 5))

	exp := `BB0:
	1 i32 Parameter -> 3 4 5
	2 i32 Constant 7 -> 3 4 5

BB2:
	3 i32 Add 1, 2 ->
	4 i32 Add 1, 2 -> 6

BB3:
	5 i32 Add 1, 2 -> 6
	6 i32 Add 4, 5 ->

BB-1
`

	assert.Equal(t, exp, string(Graph(nil, g)))
}

func TestEmptyGraph(t *testing.T) {
	assert.Equal(t, "BB0:\n\nBB-1\n", string(Graph(nil, ir.New())))
}

func TestInst(t *testing.T) {
	assert.Equal(t, "- Add _, _ ->", string(Inst(nil, ir.NewAdd())))
	assert.Equal(t, "- Parameter ->", string(Inst(nil, ir.NewParameter())))

	c := ir.NewConstant()
	c.Value = -3

	assert.Equal(t, "- Constant -3 ->", string(Inst(nil, c)))
}
