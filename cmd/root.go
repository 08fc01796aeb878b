package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/Songmu/vibeeq"
	"github.com/charmbracelet/log"
)

const cmdName = "vibeeq"

// env carries the global flags down to subcommands
type env struct {
	configPath string
	logger     *log.Logger

	// options for tests
	appOpts []vibeeq.Option
}

func (e *env) newApp(ctx context.Context, out io.Writer, force bool) (*vibeeq.App, error) {
	cfg, err := vibeeq.LoadConfig(e.configPath)
	if err != nil {
		return nil, err
	}
	opts := append([]vibeeq.Option{
		vibeeq.WithLogger(e.logger),
		vibeeq.WithOutput(out),
	}, e.appOpts...)
	app, err := vibeeq.NewApp(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	app.Force = force
	return app, nil
}

// Run the vibeeq
func Run(ctx context.Context, argv []string, outStream, errStream io.Writer) error {
	return run(ctx, &env{}, argv, outStream, errStream)
}

func run(ctx context.Context, e *env, argv []string, outStream, errStream io.Writer) error {
	nameAndVer := fmt.Sprintf("%s (v%s rev:%s)", cmdName, vibeeq.Version, vibeeq.Revision)
	fs := flag.NewFlagSet(nameAndVer, flag.ContinueOnError)
	fs.SetOutput(errStream)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", nameAndVer)
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nCommands:\n")
		formatCommands(fs.Output())
	}
	ver := fs.Bool("version", false, "display version")
	verbose := fs.Bool("v", false, "verbose output")
	fs.StringVar(&e.configPath, "config", "", "path to config file (default ~/.config/vibeeq/config.yaml)")
	if err := fs.Parse(argv); err != nil {
		return err
	}
	if *ver {
		return printVersion(outStream)
	}
	e.logger = log.NewWithOptions(errStream, log.Options{Prefix: cmdName})
	if *verbose {
		e.logger.SetLevel(log.DebugLevel)
	}
	argv = fs.Args()
	if len(argv) < 1 {
		fs.Usage()
		return fmt.Errorf("no command specified")
	}
	if cmd, ok := cmder.dispatch[argv[0]]; ok {
		return cmd.Run(ctx, e, argv[1:], outStream, errStream)
	}
	return fmt.Errorf("unknown command %q", argv[0])
}

func printVersion(out io.Writer) error {
	_, err := fmt.Fprintf(out, "%s v%s (rev:%s)\n", cmdName, vibeeq.Version, vibeeq.Revision)
	return err
}
