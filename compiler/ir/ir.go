package ir

import (
	"math"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/tlog/tlwire"
)

type (
	InstID  uint32
	BlockID int32

	Op int
)

const (
	// NoInst is the link sentinel: list head's prev, list tail's next,
	// and an unwired operand slot.
	NoInst InstID = math.MaxUint32

	StartBlock BlockID = 0
	EndBlock   BlockID = -1
)

const (
	OpParameter Op = iota
	OpConstant
	OpAdd

	numOps
)

var opNames = [numOps]string{
	OpParameter: "Parameter",
	OpConstant:  "Constant",
	OpAdd:       "Add",
}

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrUnknownRef  = errors.New("unknown reference")
	ErrUnsupported = errors.New("unsupported operation")
	ErrArity       = errors.New("arity mismatch")
	ErrCursor      = errors.New("invalid cursor state")

	ErrUnknownBlock = errors.Wrap(ErrUnknownRef, "block")
	ErrUnknownInst  = errors.Wrap(ErrUnknownRef, "instruction")
)

func (op Op) String() string {
	if op < 0 || op >= numOps {
		return "Op(" + strconv.Itoa(int(op)) + ")"
	}

	return opNames[op]
}

func (id InstID) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if id == NoInst {
		return e.AppendNil(b)
	}

	return e.AppendFormat(b, "%d", uint32(id))
}
