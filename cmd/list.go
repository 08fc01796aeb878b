package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
)

var cmdList = &command{
	Name:        "list",
	Description: "list installed presets",
	Run: func(ctx context.Context, e *env, argv []string, outStream, errStream io.Writer) error {
		fs := flag.NewFlagSet("vibeeq list", flag.ContinueOnError)
		fs.SetOutput(errStream)
		if err := fs.Parse(argv); err != nil {
			return err
		}
		app, err := e.newApp(ctx, outStream, false)
		if err != nil {
			return err
		}
		for _, n := range app.Presets {
			fmt.Fprintln(outStream, n)
		}
		return nil
	},
}
