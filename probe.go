package vibeeq

import (
	"context"
	"os/exec"
	"strings"
)

// Report is the result of probing the environment for the daemon and its
// plugins
type Report struct {
	Daemon           string
	PluginPackage    string
	PackageManager   string
	DaemonInstalled  bool
	PluginsInstalled bool
}

// Ready reports whether presets can be imported and loaded
func (r Report) Ready() bool {
	return r.DaemonInstalled && r.PluginsInstalled
}

// Missing lists what is not installed
func (r Report) Missing() []string {
	var missing []string
	if !r.DaemonInstalled {
		missing = append(missing, r.Daemon)
	}
	if !r.PluginsInstalled {
		missing = append(missing, r.PluginPackage)
	}
	return missing
}

// Hint returns the command that installs whatever is missing
func (r Report) Hint() string {
	missing := r.Missing()
	if len(missing) == 0 {
		return ""
	}
	return "sudo " + r.PackageManager + " -S " + strings.Join(missing, " ")
}

// Prober inspects the environment once at startup
type Prober interface {
	Probe(ctx context.Context) Report
}

// SystemProber looks for the daemon on PATH and asks the package manager
// about the plugin package
type SystemProber struct {
	Daemon         string
	PackageManager string
	PluginPackage  string

	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewSystemProber builds a prober from the configuration
func NewSystemProber(cfg *Config) *SystemProber {
	return &SystemProber{
		Daemon:         cfg.Daemon,
		PackageManager: cfg.PackageManager,
		PluginPackage:  cfg.PluginPackage,
		lookPath:       exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

func (p *SystemProber) Probe(ctx context.Context) Report {
	r := Report{
		Daemon:         p.Daemon,
		PluginPackage:  p.PluginPackage,
		PackageManager: p.PackageManager,
	}
	if _, err := p.lookPath(p.Daemon); err == nil {
		r.DaemonInstalled = true
	}
	// pacman -Q exits non-zero for unknown packages; a missing package
	// manager counts as not installed as well.
	if err := p.run(ctx, p.PackageManager, "-Q", p.PluginPackage); err == nil {
		r.PluginsInstalled = true
	}
	return r
}
