package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Songmu/vibeeq"
)

var cmdConvert = &command{
	Name:        "convert",
	Description: "print the converted preset without installing it",
	Run: func(ctx context.Context, e *env, argv []string, outStream, errStream io.Writer) error {
		fs := flag.NewFlagSet("vibeeq convert", flag.ContinueOnError)
		fs.SetOutput(errStream)
		if err := fs.Parse(argv); err != nil {
			return err
		}
		argv = fs.Args()
		if len(argv) < 1 {
			return fmt.Errorf("no args specified")
		}
		var in io.Reader = os.Stdin
		if argv[0] != "-" {
			f, err := os.Open(argv[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", argv[0], err)
			}
			defer f.Close()
			in = f
		}
		p, err := vibeeq.Convert(in)
		if err != nil {
			return err
		}
		e.logger.Debug("converted", "bands", p.Output.Equalizer.NumBands)
		return p.Encode(outStream)
	},
}
