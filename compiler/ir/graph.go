package ir

import (
	"nikand.dev/go/heap"
	"tlog.app/go/errors"
)

type (
	// Graph owns basic blocks.
	// Instruction ids are unique across the whole graph.
	Graph struct {
		blocks map[BlockID]*Block

		// where is the owning block of every instruction.
		where map[InstID]BlockID
	}
)

// New creates a graph with empty StartBlock and EndBlock.
func New() *Graph {
	g := &Graph{
		blocks: make(map[BlockID]*Block),
		where:  make(map[InstID]BlockID),
	}

	for _, id := range []BlockID{StartBlock, EndBlock} {
		b := NewBlock()
		b.g = g
		b.id = id

		g.blocks[id] = b
	}

	return g
}

// AddBlock adds b to the graph under id.
// b may already hold instructions, their ids must not be in the graph yet.
func (g *Graph) AddBlock(id BlockID, b *Block) error {
	if _, ok := g.blocks[id]; ok {
		return errors.Wrap(ErrDuplicateID, "block %v", id)
	}

	if b == nil {
		return errors.Wrap(ErrUnsupported, "add nil block %v", id)
	}

	if b.g != nil {
		return errors.Wrap(ErrUnsupported, "block %v is already owned by a graph", id)
	}

	for iid := range b.insts {
		if bid, ok := g.where[iid]; ok {
			return errors.Wrap(ErrDuplicateID, "instruction %v already in block %v", iid, bid)
		}
	}

	for iid := range b.insts {
		g.where[iid] = id
	}

	b.g = g
	b.id = id
	g.blocks[id] = b

	return nil
}

// NewBlock creates an empty block and adds it under id.
func (g *Graph) NewBlock(id BlockID) (*Block, error) {
	b := NewBlock()

	err := g.AddBlock(id, b)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// AddInst appends x to the block bid.
func (g *Graph) AddInst(bid BlockID, id InstID, x Inst) error {
	b, ok := g.blocks[bid]
	if !ok {
		return errors.Wrap(ErrUnknownBlock, "add instruction %v to block %v", id, bid)
	}

	if bid == EndBlock {
		return errors.Wrap(ErrUnsupported, "add instruction %v to end block", id)
	}

	if owner, ok := g.where[id]; ok {
		return errors.Wrap(ErrDuplicateID, "instruction %v already in block %v", id, owner)
	}

	err := b.check(id, x)
	if err != nil {
		return err
	}

	b.pushBack(id, x)
	g.where[id] = bid

	return nil
}

// SetInputs wires in as operands of instruction id and records id
// as a user of every input. Nothing is changed on error.
func (g *Graph) SetInputs(id InstID, in ...InstID) error {
	x, ok := g.Inst(id)
	if !ok {
		return errors.Wrap(ErrUnknownInst, "set inputs of %v", id)
	}

	for _, iid := range in {
		if _, ok := g.where[iid]; !ok {
			return errors.Wrap(ErrUnknownInst, "input %v of %v", iid, id)
		}
	}

	err := x.checkIn(in)
	if err != nil {
		return errors.Wrap(err, "instruction %v", id)
	}

	for _, old := range x.In() {
		if old == NoInst || contains(in, old) {
			continue
		}

		y, _ := g.Inst(old)
		y.Common().delUser(id)
	}

	for _, iid := range in {
		y, _ := g.Inst(iid)
		y.Common().addUser(id)
	}

	x.setIn(in)

	return nil
}

func (g *Graph) Block(id BlockID) (*Block, bool) {
	b, ok := g.blocks[id]
	return b, ok
}

func (g *Graph) Inst(id InstID) (Inst, bool) {
	bid, ok := g.where[id]
	if !ok {
		return nil, false
	}

	return g.blocks[bid].Inst(id)
}

// BlockOf returns the block owning instruction id.
func (g *Graph) BlockOf(id InstID) (BlockID, bool) {
	bid, ok := g.where[id]
	return bid, ok
}

// Len is the number of instructions in the graph.
func (g *Graph) Len() int { return len(g.where) }

func (g *Graph) NumBlocks() int { return len(g.blocks) }

// BlockIDs returns block ids in ascending order with EndBlock last.
func (g *Graph) BlockIDs() []BlockID {
	h := heap.Heap[BlockID]{Less: blockLess}

	for id := range g.blocks {
		h.Push(id)
	}

	l := make([]BlockID, 0, h.Len())

	for h.Len() != 0 {
		l = append(l, h.Pop())
	}

	return l
}

func blockLess(d []BlockID, i, j int) bool {
	if d[i] == EndBlock || d[j] == EndBlock {
		return d[j] == EndBlock && d[i] != EndBlock
	}

	return d[i] < d[j]
}

func contains(l []InstID, id InstID) bool {
	for _, x := range l {
		if x == id {
			return true
		}
	}

	return false
}
