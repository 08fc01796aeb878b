package vibeeq

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

const (
	// BandType is the EasyEffects filter type written for every band
	BandType = "Bell"
	// BandMode is the EasyEffects filter mode written for every band
	BandMode = "RLC (BT)"
	// PluginEqualizer is the only plugin in plugins_order
	PluginEqualizer = "equalizer"
)

// Band is one EasyEffects equalizer band
type Band struct {
	Type      string  `json:"type" yaml:"type"`
	Mode      string  `json:"mode" yaml:"mode"`
	Mute      bool    `json:"mute" yaml:"mute"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
	Gain      float64 `json:"gain" yaml:"gain"`
	Q         float64 `json:"q" yaml:"q"`
}

// NewBand returns a Bell band with the given parameters
func NewBand(freq, gain, q float64) Band {
	return Band{
		Type:      BandType,
		Mode:      BandMode,
		Frequency: freq,
		Gain:      gain,
		Q:         q,
	}
}

// Channel holds the bands of one side, serialized as band0..bandN-1
type Channel []Band

func bandKey(i int) string {
	return "band" + strconv.Itoa(i)
}

// MarshalJSON writes the bands in index order. encoding/json would sort map
// keys lexically and put band10 before band2.
func (c Channel) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, b := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", bandKey(i))
		bb, err := json.Marshal(b)
		if err != nil {
			return nil, err
		}
		buf.Write(bb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads bandN members and orders them by N
func (c *Channel) UnmarshalJSON(data []byte) error {
	v, err := ParseJSON(data)
	if err != nil {
		return err
	}
	if v.Kind != Object {
		return fmt.Errorf("channel must be an object, got %s", v.Kind)
	}
	type indexed struct {
		idx  int
		band Band
	}
	var bands []indexed
	for _, m := range v.Members {
		n, ok := strings.CutPrefix(m.Key, "band")
		if !ok {
			continue
		}
		idx, err := strconv.Atoi(n)
		if err != nil {
			continue
		}
		var b Band
		if err := json.Unmarshal([]byte(m.Value.Raw()), &b); err != nil {
			return fmt.Errorf("failed to decode %s: %w", m.Key, err)
		}
		bands = append(bands, indexed{idx, b})
	}
	slices.SortFunc(bands, func(a, b indexed) int { return a.idx - b.idx })
	out := make(Channel, len(bands))
	for i, b := range bands {
		out[i] = b.band
	}
	*c = out
	return nil
}

// Equalizer is the equalizer plugin section
type Equalizer struct {
	Left     Channel `json:"left"`
	Right    Channel `json:"right"`
	NumBands int     `json:"num-bands"`
}

// Output is the output-effects section of an EasyEffects preset
type Output struct {
	Blocklist    []string  `json:"blocklist"`
	PluginsOrder []string  `json:"plugins_order"`
	Equalizer    Equalizer `json:"equalizer"`
}

// Preset is an EasyEffects output preset
type Preset struct {
	Output Output `json:"output"`
}

// NewPreset builds a preset with identical left and right channels
func NewPreset(bands []Band) *Preset {
	left := make(Channel, len(bands))
	copy(left, bands)
	right := make(Channel, len(bands))
	copy(right, bands)
	return &Preset{
		Output: Output{
			Blocklist:    []string{},
			PluginsOrder: []string{PluginEqualizer},
			Equalizer: Equalizer{
				Left:     left,
				Right:    right,
				NumBands: len(bands),
			},
		},
	}
}

// Bands returns the bands of the left channel
func (p *Preset) Bands() []Band {
	return p.Output.Equalizer.Left
}

// Encode writes the preset as indented JSON
func (p *Preset) Encode(w io.Writer) error {
	b, err := p.MarshalIndent()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// MarshalIndent returns the preset as 4-space indented JSON with a trailing
// newline
func (p *Preset) MarshalIndent() ([]byte, error) {
	b, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preset: %w", err)
	}
	return append(b, '\n'), nil
}

// DecodePreset reads an installed preset
func DecodePreset(data []byte) (*Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode preset: %w", err)
	}
	return &p, nil
}

// Convert reads a source document and builds the target preset from it
func Convert(r io.Reader) (*Preset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	doc, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return Normalize(Locate(doc))
}
