package ir

import "tlog.app/go/errors"

type (
	// Block is a basic block: instructions in emission order
	// kept as an intrusive list over an id-keyed arena.
	Block struct {
		insts map[InstID]Inst

		first, last InstID

		g  *Graph
		id BlockID
	}
)

func NewBlock() *Block {
	return &Block{
		insts: make(map[InstID]Inst),
		first: NoInst,
		last:  NoInst,
	}
}

// Append adds x to the end of the block.
// If the block is owned by a Graph the id must be unique graph-wide.
func (b *Block) Append(id InstID, x Inst) error {
	if b.g != nil {
		return b.g.AddInst(b.id, id, x)
	}

	err := b.check(id, x)
	if err != nil {
		return err
	}

	b.pushBack(id, x)

	return nil
}

func (b *Block) check(id InstID, x Inst) error {
	if x == nil {
		return errors.Wrap(ErrUnsupported, "append nil instruction %v", id)
	}

	if id == NoInst {
		return errors.Wrap(ErrDuplicateID, "instruction id %v is reserved", id)
	}

	if _, ok := b.insts[id]; ok {
		return errors.Wrap(ErrDuplicateID, "instruction %v", id)
	}

	if x.Common().placed {
		return errors.Wrap(ErrUnsupported, "instruction %v is already placed", id)
	}

	return nil
}

func (b *Block) pushBack(id InstID, x Inst) {
	c := x.Common()

	if b.last == NoInst {
		b.first = id
		c.setPrev(NoInst)
	} else {
		b.insts[b.last].Common().setNext(id)
		c.setPrev(b.last)
	}

	c.setNext(NoInst)
	c.placed = true

	b.last = id
	b.insts[id] = x
}

func (b *Block) ID() BlockID   { return b.id }
func (b *Block) First() InstID { return b.first }
func (b *Block) Last() InstID  { return b.last }
func (b *Block) Len() int      { return len(b.insts) }

func (b *Block) Inst(id InstID) (Inst, bool) {
	x, ok := b.insts[id]
	return x, ok
}

// Range walks instructions in emission order until f returns false.
func (b *Block) Range(f func(id InstID, x Inst) bool) {
	for id, n := b.first, 0; id != NoInst && n < len(b.insts); n++ {
		x := b.insts[id]

		if !f(id, x) {
			return
		}

		id = x.Common().next
	}
}

func (b *Block) IDs() []InstID {
	l := make([]InstID, 0, len(b.insts))

	b.Range(func(id InstID, _ Inst) bool {
		l = append(l, id)
		return true
	})

	return l
}
