package ir

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/slowlang/slowir/compiler/tp"
)

type (
	// Builder constructs a Graph with chained calls:
	//
	//	b.Start().Parameter(1).I32().Constant(2).Value(7).I32()
	//	b.Block(2).Add(3).I32().Inputs(1, 2)
	//
	// The first failed call is remembered and turns the rest into no-ops.
	Builder struct {
		g *Graph

		tr tlog.Span

		state cursorState
		bb    BlockID
		inst  InstID

		err   error
		errAt loc.PC
	}

	cursorState int
)

const (
	noBlock cursorState = iota
	blockSelected
	instSelected
)

func NewBuilder(ctx context.Context, g *Graph) *Builder {
	return &Builder{
		g:    g,
		tr:   tlog.SpanFromContext(ctx),
		inst: NoInst,
	}
}

func (b *Builder) Graph() *Graph { return b.g }

// Err returns the first construction error.
func (b *Builder) Err() error { return b.err }

// ErrAt returns the call site of the builder call that failed.
func (b *Builder) ErrAt() loc.PC { return b.errAt }

// CurrentBlock returns the selected block if any.
func (b *Builder) CurrentBlock() (BlockID, bool) {
	return b.bb, b.state != noBlock
}

// CurrentInst returns the selected instruction or NoInst.
func (b *Builder) CurrentInst() InstID {
	return b.inst
}

// Block creates a new block and selects it.
func (b *Builder) Block(id BlockID) *Builder {
	if b.err != nil {
		return b
	}

	_, err := b.g.NewBlock(id)
	if err != nil {
		return b.fail(1, err)
	}

	b.tr.V("ir_build").Printw("block", "id", id)

	return b.selectBlock(id)
}

// Select selects an existing block.
func (b *Builder) Select(id BlockID) *Builder {
	return b.sel(1, id)
}

// Start selects StartBlock.
func (b *Builder) Start() *Builder {
	return b.sel(1, StartBlock)
}

// Inst creates an instruction at the end of the current block and selects it.
func (b *Builder) Inst(op Op, id InstID) *Builder {
	return b.newInst(1, op, id)
}

func (b *Builder) Parameter(id InstID) *Builder { return b.newInst(1, OpParameter, id) }
func (b *Builder) Constant(id InstID) *Builder  { return b.newInst(1, OpConstant, id) }
func (b *Builder) Add(id InstID) *Builder       { return b.newInst(1, OpAdd, id) }

// Type sets the result type of the current instruction.
func (b *Builder) Type(t tp.Type) *Builder {
	return b.setType(1, t)
}

func (b *Builder) I32() *Builder { return b.setType(1, tp.I32) }

// Value sets the value of the current Constant.
func (b *Builder) Value(v int64) *Builder {
	x, ok := b.current(1, "value")
	if !ok {
		return b
	}

	err := SetValue(x, v)
	if err != nil {
		return b.fail(1, errors.Wrap(err, "instruction %v", b.inst))
	}

	return b
}

// Inputs wires operands of the current instruction.
func (b *Builder) Inputs(in ...InstID) *Builder {
	if _, ok := b.current(1, "inputs"); !ok {
		return b
	}

	err := b.g.SetInputs(b.inst, in...)
	if err != nil {
		return b.fail(1, err)
	}

	b.tr.V("ir_build").Printw("inputs", "id", b.inst, "in", in)

	return b
}

// d in the helpers below is the number of frames
// between the helper's caller and the client code.

func (b *Builder) sel(d int, id BlockID) *Builder {
	if b.err != nil {
		return b
	}

	if _, ok := b.g.Block(id); !ok {
		return b.fail(d+1, errors.Wrap(ErrUnknownBlock, "select block %v", id))
	}

	return b.selectBlock(id)
}

func (b *Builder) newInst(d int, op Op, id InstID) *Builder {
	if b.err != nil {
		return b
	}

	if b.state == noBlock {
		return b.fail(d+1, errors.Wrap(ErrCursor, "%v %v: no block selected", op, id))
	}

	x, err := NewInst(op)
	if err != nil {
		return b.fail(d+1, err)
	}

	err = b.g.AddInst(b.bb, id, x)
	if err != nil {
		return b.fail(d+1, err)
	}

	b.tr.V("ir_build").Printw("inst", "block", b.bb, "id", id, "op", op)

	b.state = instSelected
	b.inst = id

	return b
}

func (b *Builder) setType(d int, t tp.Type) *Builder {
	x, ok := b.current(d+1, "type")
	if !ok {
		return b
	}

	x.Common().SetType(t)

	return b
}

func (b *Builder) selectBlock(id BlockID) *Builder {
	b.state = blockSelected
	b.bb = id
	b.inst = NoInst

	return b
}

func (b *Builder) current(d int, what string) (Inst, bool) {
	if b.err != nil {
		return nil, false
	}

	if b.state != instSelected {
		b.fail(d+1, errors.Wrap(ErrCursor, "%v: no instruction selected", what))
		return nil, false
	}

	x, ok := b.g.Inst(b.inst)
	if !ok {
		b.fail(d+1, errors.Wrap(ErrUnknownInst, "%v: current instruction %v", what, b.inst))
		return nil, false
	}

	return x, true
}

func (b *Builder) fail(d int, err error) *Builder {
	b.err = err
	b.errAt = loc.Caller(1 + d)

	b.tr.Printw("ir build failed", "err", err, "at", b.errAt, "block", b.bb, "inst", b.inst)

	return b
}
