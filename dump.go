package vibeeq

import (
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-yaml"
)

// Summary is the human-readable view of an installed preset
type Summary struct {
	Name     string        `yaml:"name"`
	Path     string        `yaml:"path"`
	NumBands int           `yaml:"num_bands"`
	Linked   bool          `yaml:"linked"`
	Bands    []BandSummary `yaml:"bands"`
	Right    []BandSummary `yaml:"right,omitempty"`
}

// BandSummary holds the parameters that vary between bands
type BandSummary struct {
	Frequency float64 `yaml:"frequency"`
	Gain      float64 `yaml:"gain"`
	Q         float64 `yaml:"q"`
	Mute      bool    `yaml:"mute,omitempty"`
}

func summarize(c Channel) []BandSummary {
	out := make([]BandSummary, len(c))
	for i, b := range c {
		out[i] = BandSummary{Frequency: b.Frequency, Gain: b.Gain, Q: b.Q, Mute: b.Mute}
	}
	return out
}

// NewSummary builds a Summary. The right channel is listed separately only
// when it differs from the left.
func NewSummary(name, path string, p *Preset) *Summary {
	eq := p.Output.Equalizer
	s := &Summary{
		Name:     name,
		Path:     path,
		NumBands: eq.NumBands,
		Linked:   slices.Equal(eq.Left, eq.Right),
		Bands:    summarize(eq.Left),
	}
	if !s.Linked {
		s.Right = summarize(eq.Right)
	}
	return s
}

// Dump writes an installed preset as YAML
func (a *App) Dump(output io.Writer, name string) error {
	p, path, err := a.Store.Read(name)
	if err != nil {
		return err
	}
	yamlData, err := yaml.Marshal(NewSummary(name, path, p))
	if err != nil {
		return fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	_, err = output.Write(yamlData)
	return err
}
