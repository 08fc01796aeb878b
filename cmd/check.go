package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/Songmu/vibeeq"
)

var cmdCheck = &command{
	Name:        "check",
	Description: "check that the daemon and its plugins are installed",
	Run: func(ctx context.Context, e *env, argv []string, outStream, errStream io.Writer) error {
		fs := flag.NewFlagSet("vibeeq check", flag.ContinueOnError)
		fs.SetOutput(errStream)
		if err := fs.Parse(argv); err != nil {
			return err
		}
		app, err := e.newApp(ctx, outStream, false)
		if err != nil {
			return err
		}
		printReport(outStream, app.Report)
		if !app.Report.Ready() {
			return vibeeq.ErrNotReady
		}
		return nil
	},
}

func printReport(out io.Writer, r vibeeq.Report) {
	status := func(ok bool) string {
		if ok {
			return "installed"
		}
		return "missing"
	}
	fmt.Fprintf(out, "%s: %s\n", r.Daemon, status(r.DaemonInstalled))
	fmt.Fprintf(out, "%s: %s\n", r.PluginPackage, status(r.PluginsInstalled))
	if hint := r.Hint(); hint != "" {
		fmt.Fprintf(out, "\nRun this to install what is missing:\n  %s\n", hint)
	}
}
