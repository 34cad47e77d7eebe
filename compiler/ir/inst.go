package ir

import (
	"tlog.app/go/errors"

	"github.com/slowlang/slowir/compiler/set"
	"github.com/slowlang/slowir/compiler/tp"
)

type (
	// Inst is one of Parameter, Constant or Add.
	Inst interface {
		Op() Op
		Common() *Base

		// In returns operands in order. Nil for variants without operands.
		In() []InstID

		checkIn(in []InstID) error
		setIn(in []InstID)
	}

	// Base is the bookkeeping shared by every instruction.
	Base struct {
		Type tp.Type

		prev, next InstID
		placed     bool

		users set.Sorted[InstID]
	}

	Parameter struct {
		Base
	}

	Constant struct {
		Base

		Value int64
	}

	// Add is the binary arithmetic op.
	Add struct {
		Base

		L, R InstID
	}
)

// NewInst creates an instruction of kind op with default fields.
func NewInst(op Op) (Inst, error) {
	switch op {
	case OpParameter:
		return NewParameter(), nil
	case OpConstant:
		return NewConstant(), nil
	case OpAdd:
		return NewAdd(), nil
	default:
		return nil, errors.Wrap(ErrUnsupported, "new %v", op)
	}
}

func NewParameter() *Parameter {
	return &Parameter{Base: makeBase()}
}

func NewConstant() *Constant {
	return &Constant{Base: makeBase()}
}

func NewAdd() *Add {
	return &Add{
		Base: makeBase(),
		L:    NoInst,
		R:    NoInst,
	}
}

func makeBase() Base {
	return Base{
		Type: tp.Untyped{},
		prev: NoInst,
		next: NoInst,
	}
}

// SetValue assigns the value of a Constant.
func SetValue(x Inst, v int64) error {
	c, ok := x.(*Constant)
	if !ok {
		return errors.Wrap(ErrUnsupported, "set value on %v", x.Op())
	}

	c.Value = v

	return nil
}

func (x *Base) Common() *Base { return x }

func (x *Base) SetType(t tp.Type) {
	x.Type = t
}

func (x *Base) Prev() InstID { return x.prev }
func (x *Base) Next() InstID { return x.next }

// Users returns ids of instructions having x as an input, ascending.
func (x *Base) Users() []InstID { return x.users.Slice() }

func (x *Base) NumUsers() int { return x.users.Size() }

func (x *Base) HasUser(id InstID) bool { return x.users.IsSet(id) }

func (x *Base) RangeUsers(f func(id InstID) bool) { x.users.Range(f) }

func (x *Base) addUser(id InstID) { x.users.Set(id) }
func (x *Base) delUser(id InstID) { x.users.Clear(id) }

func (x *Base) setPrev(id InstID) { x.prev = id }
func (x *Base) setNext(id InstID) { x.next = id }

func (x *Parameter) Op() Op { return OpParameter }
func (x *Constant) Op() Op  { return OpConstant }
func (x *Add) Op() Op       { return OpAdd }

func (x *Parameter) In() []InstID { return nil }
func (x *Constant) In() []InstID  { return nil }
func (x *Add) In() []InstID       { return []InstID{x.L, x.R} }

func (x *Parameter) checkIn(in []InstID) error {
	return errors.Wrap(ErrUnsupported, "set inputs on %v", x.Op())
}

func (x *Constant) checkIn(in []InstID) error {
	return errors.Wrap(ErrUnsupported, "set inputs on %v", x.Op())
}

func (x *Add) checkIn(in []InstID) error {
	if len(in) != 2 {
		return errors.Wrap(ErrArity, "%v takes 2 inputs, got %d", x.Op(), len(in))
	}

	return nil
}

func (x *Parameter) setIn(in []InstID) {}
func (x *Constant) setIn(in []InstID)  {}

func (x *Add) setIn(in []InstID) {
	x.L, x.R = in[0], in[1]
}
