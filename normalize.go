package vibeeq

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultFrequency = 100.0
	DefaultGain      = 0.0
	DefaultQ         = 1.0
)

// field describes where a band parameter is read from: the first present
// alias wins, otherwise def is used.
type field struct {
	aliases []string
	def     float64
}

var (
	frequencyField = field{aliases: []string{"frequency", "fc"}, def: DefaultFrequency}
	gainField      = field{aliases: []string{"gain", "g"}, def: DefaultGain}
	qField         = field{aliases: []string{"q"}, def: DefaultQ}
)

// Normalize maps source bands to EasyEffects bands
func Normalize(src []*Value) (*Preset, error) {
	if len(src) == 0 {
		return nil, ErrEmptyPreset
	}
	bands := make([]Band, 0, len(src))
	for i, b := range src {
		if b.Kind != Object {
			return nil, &BandError{Index: i, Value: b.Raw()}
		}
		freq, err := readField(b, i, frequencyField)
		if err != nil {
			return nil, err
		}
		gain, err := readField(b, i, gainField)
		if err != nil {
			return nil, err
		}
		q, err := readField(b, i, qField)
		if err != nil {
			return nil, err
		}
		bands = append(bands, NewBand(freq, gain, q))
	}
	return NewPreset(bands), nil
}

func readField(b *Value, idx int, f field) (float64, error) {
	for _, k := range f.aliases {
		v, ok := b.Lookup(k)
		if !ok {
			continue
		}
		n, ok := toFloat(v)
		if !ok || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, &BandError{Index: idx, Field: k, Value: v.Raw()}
		}
		return n, nil
	}
	return f.def, nil
}

// toFloat coerces numbers, numeric strings and booleans
func toFloat(v *Value) (float64, bool) {
	switch v.Kind {
	case Number:
		n, err := v.Number.Float64()
		return n, err == nil
	case String:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
		return n, err == nil
	case Bool:
		if v.Bool {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
