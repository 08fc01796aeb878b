package vibeeq

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

type fakeDaemon struct {
	loaded  []string
	shown   int
	loadErr error
	showErr error
}

func (d *fakeDaemon) Load(ctx context.Context, name string) error {
	d.loaded = append(d.loaded, name)
	return d.loadErr
}

func (d *fakeDaemon) Show() error {
	d.shown++
	return d.showErr
}

type fakeProber Report

func (p fakeProber) Probe(context.Context) Report { return Report(p) }

var readyReport = fakeProber{
	Daemon: "easyeffects", PluginPackage: "lsp-plugins", PackageManager: "pacman",
	DaemonInstalled: true, PluginsInstalled: true,
}

type testApp struct {
	*App
	daemon *fakeDaemon
	out    *bytes.Buffer
	asked  []string
}

func newTestApp(t *testing.T, prober Prober, answer bool) *testApp {
	t.Helper()
	cfg := DefaultConfig()
	cfg.PresetDir = filepath.Join(t.TempDir(), "output")
	cfg.SharedPresetDirs = []string{t.TempDir()}
	ta := &testApp{daemon: &fakeDaemon{}, out: &bytes.Buffer{}}
	app, err := NewApp(context.Background(), cfg,
		WithDaemon(ta.daemon),
		WithProber(prober),
		WithOutput(ta.out),
		WithConfirm(func(q string) bool {
			ta.asked = append(ta.asked, q)
			return answer
		}),
	)
	if err != nil {
		t.Fatalf("NewApp returned error: %v", err)
	}
	ta.App = app
	return ta
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}

func TestImport(t *testing.T) {
	a := newTestApp(t, readyReport, true)
	res, err := a.Import(context.Background(), fixture("Bass Boost.json"), ImportOptions{})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	want := &ImportResult{
		Name:    "Bass_Boost",
		Path:    filepath.Join(a.Config.PresetDir, "Bass_Boost.json"),
		Bands:   10,
		Written: true,
	}
	if !reflect.DeepEqual(res, want) {
		t.Errorf("Import() = %+v, want %+v", res, want)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("preset was not written: %v", err)
	}
	if !reflect.DeepEqual(a.Presets, []string{"Bass_Boost"}) {
		t.Errorf("Presets = %v, want [Bass_Boost]", a.Presets)
	}
	if !reflect.DeepEqual(a.daemon.loaded, []string{"Bass_Boost"}) || a.daemon.shown != 1 {
		t.Errorf("daemon loaded %v shown %d", a.daemon.loaded, a.daemon.shown)
	}
}

func TestImportErrorsWriteNothing(t *testing.T) {
	tests := []struct {
		file  string
		check func(error) bool
	}{
		{"no_bands.json", func(err error) bool { return errors.Is(err, ErrEmptyPreset) }},
		{"broken.json", func(err error) bool { var e *JSONError; return errors.As(err, &e) }},
		{"malformed_band.json", func(err error) bool { var e *BandError; return errors.As(err, &e) }},
		{"does_not_exist.json", func(err error) bool { return errors.Is(err, os.ErrNotExist) }},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			a := newTestApp(t, readyReport, true)
			res, err := a.Import(context.Background(), fixture(tt.file), ImportOptions{})
			if !tt.check(err) {
				t.Fatalf("Import error = %v", err)
			}
			if res != nil {
				t.Errorf("Import result = %+v, want nil", res)
			}
			if entries, _ := os.ReadDir(a.Config.PresetDir); len(entries) != 0 {
				t.Errorf("preset directory should be empty, has %d entries", len(entries))
			}
			if len(a.daemon.loaded) != 0 {
				t.Errorf("daemon should not be called, loaded %v", a.daemon.loaded)
			}
		})
	}
}

func TestImportNoFileSelected(t *testing.T) {
	a := newTestApp(t, readyReport, true)
	if _, err := a.Import(context.Background(), "", ImportOptions{}); !errors.Is(err, ErrNoFileSelected) {
		t.Errorf("Import(\"\") error = %v, want ErrNoFileSelected", err)
	}
}

func TestImportNotReady(t *testing.T) {
	notReady := readyReport
	notReady.PluginsInstalled = false
	a := newTestApp(t, notReady, true)
	if _, err := a.Import(context.Background(), fixture("entries.json"), ImportOptions{}); !errors.Is(err, ErrNotReady) {
		t.Fatalf("Import error = %v, want ErrNotReady", err)
	}

	a.Force = true
	if _, err := a.Import(context.Background(), fixture("entries.json"), ImportOptions{}); err != nil {
		t.Errorf("forced Import returned error: %v", err)
	}
}

func TestImportLoadFailureKeepsPreset(t *testing.T) {
	a := newTestApp(t, readyReport, true)
	a.daemon.loadErr = &ToolError{Args: []string{"easyeffects", "-l", "entries"}, Err: errors.New("exit status 1")}

	res, err := a.Import(context.Background(), fixture("entries.json"), ImportOptions{})
	var terr *ToolError
	if !errors.As(err, &terr) {
		t.Fatalf("Import error = %v, want *ToolError", err)
	}
	if res == nil || !res.Written {
		t.Fatalf("Import result = %+v, want written preset", res)
	}
	if _, err := os.Stat(res.Path); err != nil {
		t.Errorf("preset should be kept: %v", err)
	}
	if a.daemon.shown != 0 {
		t.Error("window should not be raised after a failed load")
	}
}

func TestImportShowFailureIsIgnored(t *testing.T) {
	a := newTestApp(t, readyReport, true)
	a.daemon.showErr = errors.New("no display")
	if _, err := a.Import(context.Background(), fixture("entries.json"), ImportOptions{}); err != nil {
		t.Errorf("Import returned error: %v", err)
	}
}

func TestImportDryRun(t *testing.T) {
	notReady := fakeProber{}
	a := newTestApp(t, notReady, true)
	res, err := a.Import(context.Background(), fixture("entries.json"), ImportOptions{DryRun: true})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if res.Written {
		t.Error("dry run should not write")
	}
	if _, err := os.Stat(res.Path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("dry run created %s", res.Path)
	}
	if !strings.Contains(a.out.String(), "New preset") {
		t.Errorf("output = %q", a.out.String())
	}
}

func TestImportConfirm(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, readyReport, false)
	dst := filepath.Join(a.Config.PresetDir, "entries.json")

	// first import of a new preset asks as well
	res, err := a.Import(ctx, fixture("entries.json"), ImportOptions{Confirm: true})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if res.Written || len(a.asked) != 1 {
		t.Fatalf("declined import wrote=%v asked=%v", res.Written, a.asked)
	}
	if _, err := os.Stat(dst); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("declined import created %s", dst)
	}

	// an identical preset needs no question and is rewritten
	if _, err := a.Store.Write("entries", mustConvert(t, "entries.json")); err != nil {
		t.Fatal(err)
	}
	a.asked = nil
	res, err = a.Import(ctx, fixture("entries.json"), ImportOptions{Confirm: true})
	if err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if !res.Written || len(a.asked) != 0 {
		t.Errorf("unchanged import wrote=%v asked=%v", res.Written, a.asked)
	}
	if !strings.Contains(a.out.String(), "No changes to apply.") {
		t.Errorf("output = %q", a.out.String())
	}

	// a changed preset shows a diff
	if _, err := a.Store.Write("entries", NewPreset([]Band{NewBand(1, 2, 3)})); err != nil {
		t.Fatal(err)
	}
	a.out.Reset()
	if _, err := a.Import(ctx, fixture("entries.json"), ImportOptions{Confirm: true}); err != nil {
		t.Fatalf("Import returned error: %v", err)
	}
	if !strings.Contains(a.out.String(), "The following changes will be applied") {
		t.Errorf("output = %q", a.out.String())
	}
}

func TestActivate(t *testing.T) {
	a := newTestApp(t, readyReport, true)
	show := false
	a.Config.ShowWindow = &show
	if err := a.Activate(context.Background(), "rock"); err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}
	if !reflect.DeepEqual(a.daemon.loaded, []string{"rock"}) || a.daemon.shown != 0 {
		t.Errorf("daemon loaded %v shown %d", a.daemon.loaded, a.daemon.shown)
	}

	b := newTestApp(t, fakeProber{}, true)
	if err := b.Activate(context.Background(), "rock"); !errors.Is(err, ErrNotReady) {
		t.Errorf("Activate error = %v, want ErrNotReady", err)
	}
}

func TestRefreshSeesSharedPresets(t *testing.T) {
	a := newTestApp(t, readyReport, true)
	if _, err := NewStore(a.Store.SharedDirs[0]).Write("vendor", NewPreset([]Band{NewBand(1, 1, 1)})); err != nil {
		t.Fatal(err)
	}
	if err := a.Refresh(); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if !reflect.DeepEqual(a.Presets, []string{"vendor"}) {
		t.Errorf("Presets = %v", a.Presets)
	}
}

func TestDump(t *testing.T) {
	a := newTestApp(t, readyReport, true)
	if _, err := a.Import(context.Background(), fixture("entries.json"), ImportOptions{}); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := a.Dump(&buf, "entries"); err != nil {
		t.Fatalf("Dump returned error: %v", err)
	}
	out := buf.String()
	for _, s := range []string{"name: entries", "num_bands: 1", "linked: true", "frequency: 100", "q: 0.7"} {
		if !strings.Contains(out, s) {
			t.Errorf("dump should contain %q:\n%s", s, out)
		}
	}
	if strings.Contains(out, "right:") {
		t.Errorf("linked preset should not list the right channel:\n%s", out)
	}
	if err := a.Dump(&buf, "missing"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Dump(missing) error = %v", err)
	}
}

func mustConvert(t *testing.T, name string) *Preset {
	t.Helper()
	f, err := os.Open(fixture(name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	p, err := Convert(f)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
