package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/Songmu/vibeeq"
)

var cmdImport = &command{
	Name:        "import",
	Description: "convert a preset file, install it and load it",
	Run: func(ctx context.Context, e *env, argv []string, outStream, errStream io.Writer) error {
		fs := flag.NewFlagSet("vibeeq import", flag.ContinueOnError)
		fs.SetOutput(errStream)
		dryRun := fs.Bool("n", false, "show what would be written without writing")
		interactive := fs.Bool("i", false, "confirm before overwriting a changed preset")
		force := fs.Bool("force", false, "import even if dependencies are missing")
		if err := fs.Parse(argv); err != nil {
			return err
		}
		app, err := e.newApp(ctx, outStream, *force)
		if err != nil {
			return err
		}
		if !*dryRun && !app.Ready() {
			printReport(errStream, app.Report)
			return vibeeq.ErrNotReady
		}
		var path string
		if argv = fs.Args(); len(argv) > 0 {
			path = argv[0]
		} else if path, err = pickFile(ctx); err != nil {
			if errors.Is(err, vibeeq.ErrNoFileSelected) {
				return nil
			}
			return err
		}

		res, err := app.Import(ctx, path, vibeeq.ImportOptions{
			DryRun:  *dryRun,
			Confirm: *interactive,
		})
		if errors.Is(err, vibeeq.ErrNoFileSelected) {
			return nil
		}
		if res != nil && res.Written {
			if err != nil {
				fmt.Fprintf(outStream, "Preset %q written to %s but could not be loaded.\n", res.Name, res.Path)
				return err
			}
			fmt.Fprintf(outStream, "Preset %q installed (%d bands).\n", res.Name, res.Bands)
		}
		return err
	},
}
