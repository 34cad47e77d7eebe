package tp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntString(t *testing.T) {
	assert.Equal(t, "i32", I32.String())
	assert.Equal(t, "u64", Int{Bits: 64}.String())
	assert.Equal(t, 4, I32.Size())
	assert.Equal(t, 8, Int{Bits: 64, Signed: true}.Size())
}

func TestUntyped(t *testing.T) {
	assert.True(t, IsUntyped(nil))
	assert.True(t, IsUntyped(Untyped{}))
	assert.False(t, IsUntyped(I32))

	assert.Equal(t, 0, Untyped{}.Size())
	assert.Equal(t, Type(Int{Bits: 32, Signed: true}), I32)
}
