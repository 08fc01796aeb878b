package vibeeq

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// App is the state shared by all commands: configuration, the environment
// probe taken at startup and the list of known presets.
type App struct {
	Config  *Config
	Store   *Store
	Daemon  Daemon
	Report  Report
	Presets []string
	// Force skips the readiness check
	Force bool

	logger  *log.Logger
	out     io.Writer
	confirm func(question string) bool
	prober  Prober
}

// Option customizes an App
type Option func(*App)

// WithDaemon replaces the easyeffects command line
func WithDaemon(d Daemon) Option {
	return func(a *App) { a.Daemon = d }
}

// WithProber replaces the system probe
func WithProber(p Prober) Option {
	return func(a *App) { a.prober = p }
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithOutput sets where messages for the user are printed
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithConfirm replaces the interactive yes/no prompt
func WithConfirm(f func(string) bool) Option {
	return func(a *App) { a.confirm = f }
}

// NewApp builds the application state and probes the environment once
func NewApp(ctx context.Context, cfg *Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	store, err := cfg.Store()
	if err != nil {
		return nil, err
	}
	a := &App{
		Config:  cfg,
		Store:   store,
		out:     os.Stdout,
		confirm: promptYN,
	}
	for _, o := range opts {
		o(a)
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	if a.Daemon == nil {
		a.Daemon = NewEasyEffects(cfg.Daemon)
	}
	if a.prober == nil {
		a.prober = NewSystemProber(cfg)
	}
	a.Report = a.prober.Probe(ctx)
	a.logger.Debug("probed environment",
		"daemon", a.Report.DaemonInstalled, "plugins", a.Report.PluginsInstalled)
	if err := a.Refresh(); err != nil {
		return nil, err
	}
	return a, nil
}

// Ready reports whether import and load are allowed
func (a *App) Ready() bool {
	return a.Force || a.Report.Ready()
}

// Refresh rescans the preset directories
func (a *App) Refresh() error {
	names, err := a.Store.List()
	if err != nil {
		return err
	}
	a.Presets = names
	return nil
}

// ImportOptions controls Import
type ImportOptions struct {
	// DryRun shows what would change and writes nothing
	DryRun bool
	// Confirm asks before overwriting a preset that differs
	Confirm bool
}

// ImportResult describes an imported preset
type ImportResult struct {
	Name    string
	Path    string
	Bands   int
	Written bool
}

// Import converts the source file at path, installs it and asks the daemon
// to load it. When loading fails the written preset is kept and both the
// result and the error are returned.
func (a *App) Import(ctx context.Context, path string, opts ImportOptions) (*ImportResult, error) {
	if path == "" {
		return nil, ErrNoFileSelected
	}
	if !opts.DryRun && !a.Ready() {
		return nil, ErrNotReady
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	preset, err := Convert(f)
	if err != nil {
		return nil, err
	}
	name := PresetName(path)
	res := &ImportResult{
		Name:  name,
		Path:  a.Store.Path(name),
		Bands: preset.Output.Equalizer.NumBands,
	}
	a.logger.Debug("converted preset", "source", path, "name", name, "bands", res.Bands)

	if opts.DryRun || opts.Confirm {
		changed, err := a.showDiff(res.Path, preset)
		if err != nil {
			return nil, err
		}
		if opts.DryRun {
			return res, nil
		}
		if changed && !a.confirm("Write this preset?") {
			fmt.Fprintln(a.out, "Preset not written.")
			return res, nil
		}
	}

	if _, err := a.Store.Write(name, preset); err != nil {
		return nil, err
	}
	res.Written = true
	a.logger.Debug("wrote preset", "path", res.Path)
	if err := a.Refresh(); err != nil {
		return res, err
	}
	return res, a.Activate(ctx, name)
}

// showDiff prints how the preset at path would change and reports whether
// it differs
func (a *App) showDiff(path string, p *Preset) (bool, error) {
	next, err := p.MarshalIndent()
	if err != nil {
		return false, err
	}
	current, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(a.out, "New preset %s with %d bands.\n", path, p.Output.Equalizer.NumBands)
			return true, nil
		}
		return false, fmt.Errorf("failed to read current preset: %w", err)
	}
	if string(current) == string(next) {
		fmt.Fprintln(a.out, "No changes to apply.")
		return false, nil
	}
	fmt.Fprintf(a.out, "The following changes will be applied to %s:\n%s\n",
		path, generateDiff(string(current), string(next)))
	return true, nil
}

// Activate loads an installed preset and raises the daemon's window. Only
// the load is awaited; a failure to raise the window is not an error.
func (a *App) Activate(ctx context.Context, name string) error {
	if !a.Ready() {
		return ErrNotReady
	}
	if err := a.Daemon.Load(ctx, name); err != nil {
		return err
	}
	a.logger.Debug("loaded preset", "name", name)
	if a.Config.ShouldShowWindow() {
		if err := a.Daemon.Show(); err != nil {
			a.logger.Debug("could not raise daemon window", "err", err)
		}
	}
	return nil
}
