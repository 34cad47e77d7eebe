package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slowlang/slowir/compiler/tp"
)

func TestNewDefaults(t *testing.T) {
	for _, op := range []Op{OpParameter, OpConstant, OpAdd} {
		x, err := NewInst(op)
		require.NoError(t, err, "op %v", op)
		require.Equal(t, op, x.Op())

		c := x.Common()
		assert.True(t, tp.IsUntyped(c.Type))
		assert.Equal(t, NoInst, c.Prev())
		assert.Equal(t, NoInst, c.Next())
		assert.Equal(t, 0, c.NumUsers())
		assert.Nil(t, c.Users())
	}

	c := NewConstant()
	assert.Equal(t, int64(0), c.Value)
	assert.Nil(t, c.In())

	a := NewAdd()
	assert.Equal(t, []InstID{NoInst, NoInst}, a.In())

	_, err := NewInst(Op(100))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "Parameter", OpParameter.String())
	assert.Equal(t, "Constant", OpConstant.String())
	assert.Equal(t, "Add", OpAdd.String())
	assert.Equal(t, "Op(7)", Op(7).String())
}

func TestSetType(t *testing.T) {
	x := NewParameter()

	x.SetType(tp.I32)
	assert.Equal(t, tp.I32, x.Type)

	x.Common().SetType(tp.Int{Bits: 64})
	assert.Equal(t, tp.Type(tp.Int{Bits: 64}), x.Type)
}

func TestSetValue(t *testing.T) {
	c := NewConstant()

	err := SetValue(c, -7)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), c.Value)

	p := NewParameter()
	err = SetValue(p, 7)
	assert.ErrorIs(t, err, ErrUnsupported)

	a := NewAdd()
	err = SetValue(a, 7)
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, []InstID{NoInst, NoInst}, a.In())
}

func TestCheckInputs(t *testing.T) {
	assert.ErrorIs(t, NewParameter().checkIn([]InstID{1, 2}), ErrUnsupported)
	assert.ErrorIs(t, NewConstant().checkIn(nil), ErrUnsupported)

	a := NewAdd()
	assert.ErrorIs(t, a.checkIn([]InstID{1}), ErrArity)
	assert.ErrorIs(t, a.checkIn([]InstID{1, 2, 3}), ErrArity)
	assert.NoError(t, a.checkIn([]InstID{1, 2}))

	a.setIn([]InstID{4, 5})
	assert.Equal(t, InstID(4), a.L)
	assert.Equal(t, InstID(5), a.R)
}

func TestUsersIdempotent(t *testing.T) {
	x := NewParameter()

	x.addUser(5)
	x.addUser(3)
	x.addUser(5)

	assert.Equal(t, []InstID{3, 5}, x.Users())
	assert.Equal(t, 2, x.NumUsers())
	assert.True(t, x.HasUser(3))
	assert.False(t, x.HasUser(4))

	x.delUser(3)
	assert.Equal(t, []InstID{5}, x.Users())
}
