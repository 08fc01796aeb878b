package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/Songmu/vibeeq"
)

var cmdLoad = &command{
	Name:        "load",
	Description: "load an installed preset into the daemon",
	Run: func(ctx context.Context, e *env, argv []string, outStream, errStream io.Writer) error {
		fs := flag.NewFlagSet("vibeeq load", flag.ContinueOnError)
		fs.SetOutput(errStream)
		force := fs.Bool("force", false, "load even if dependencies are missing")
		if err := fs.Parse(argv); err != nil {
			return err
		}
		app, err := e.newApp(ctx, outStream, *force)
		if err != nil {
			return err
		}
		var name string
		if argv = fs.Args(); len(argv) > 0 {
			name = argv[0]
		} else if name, err = pickPreset(ctx, app.Presets); err != nil {
			return err
		}
		if name == "" {
			return fmt.Errorf("no args specified")
		}
		if err := app.Activate(ctx, name); err != nil {
			if errors.Is(err, vibeeq.ErrNotReady) {
				printReport(errStream, app.Report)
			}
			return err
		}
		fmt.Fprintf(outStream, "Preset %q loaded.\n", name)
		return nil
	},
}
