package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
)

var cmdDump = &command{
	Name:        "dump",
	Description: "show an installed preset as YAML",
	Run: func(ctx context.Context, e *env, argv []string, outStream, errStream io.Writer) error {
		fs := flag.NewFlagSet("vibeeq dump", flag.ContinueOnError)
		fs.SetOutput(errStream)
		if err := fs.Parse(argv); err != nil {
			return err
		}
		argv = fs.Args()
		if len(argv) < 1 {
			return fmt.Errorf("no args specified")
		}
		app, err := e.newApp(ctx, outStream, false)
		if err != nil {
			return err
		}
		return app.Dump(outStream, argv[0])
	},
}
