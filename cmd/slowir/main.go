package main

import (
	"context"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/slowlang/slowir/compiler"
)

func main() {
	exampleCmd := &cli.Command{
		Name:        "example",
		Description: "build the example graph and dump it",
		Action:      exampleAct,
	}

	app := &cli.Command{
		Name:        "slowir",
		Description: "slowir builds and prints graph intermediate representation",
		Commands: []*cli.Command{
			exampleCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func exampleAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	g, err := compiler.Example(ctx)
	if err != nil {
		return errors.Wrap(err, "example")
	}

	b := compiler.Dump(ctx, nil, g)

	_, err = os.Stdout.Write(b)
	if err != nil {
		return errors.Wrap(err, "write")
	}

	return nil
}
