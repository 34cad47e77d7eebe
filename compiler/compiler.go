package compiler

import (
	"context"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/slowir/compiler/dump"
	"github.com/slowlang/slowir/compiler/ir"
)

// Example builds the demonstration program:
//
//	BB0: 1 = Parameter, 2 = Constant 7
//	BB2: 3 = Add 1, 2; 4 = Add 1, 2
//	BB3: 5 = Add 1, 2; 6 = Add 4, 5
func Example(ctx context.Context) (g *ir.Graph, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "build example graph")
	defer tr.Finish("err", &err)

	g = ir.New()
	b := ir.NewBuilder(ctx, g)

	b.Start().
		Parameter(1).I32().
		Constant(2).Value(7).I32()

	b.Block(2).
		Add(3).I32().Inputs(1, 2).
		Add(4).I32().Inputs(1, 2)

	b.Block(3).
		Add(5).I32().Inputs(1, 2).
		Add(6).I32().Inputs(4, 5)

	if err = b.Err(); err != nil {
		return nil, errors.Wrap(err, "build")
	}

	tr.Printw("graph built", "blocks", g.NumBlocks(), "insts", g.Len())

	return g, nil
}

// Dump appends a human readable form of g.
func Dump(ctx context.Context, b []byte, g *ir.Graph) []byte {
	tlog.SpanFromContext(ctx).Printw("dump graph", "blocks", g.NumBlocks(), "insts", g.Len())

	b = append(b, dump.Header...)
	b = dump.Graph(b, g)

	return b
}
