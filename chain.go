// SPDX-License-Identifier: EPL-2.0

package wavfx

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/wavfx/formats/wav"
)

// Legacy processing parameters: half a second of delay at 0.6 feedback.
const (
	DefaultReverbDelay = 0.5
	DefaultReverbDecay = 0.6
)

// Effect transforms the samples of a file in place. An effect that returns
// an error must leave the file unchanged.
type Effect interface {
	Apply(f *wav.File) error
}

// Mono downmixes a stereo file to one channel.
type Mono struct{}

func (Mono) Apply(f *wav.File) error { return f.Mono() }

func (Mono) String() string { return "mono" }

// Reverb applies the feedback delay reverb to every channel.
type Reverb struct {
	// Delay between a sample and its echo, in seconds.
	Delay float64
	// Decay is the feedback gain applied to each echo.
	Decay float32
}

func (r Reverb) Apply(f *wav.File) error { return f.Reverb(r.Delay, r.Decay) }

func (r Reverb) String() string {
	return fmt.Sprintf("reverb(delay=%gs, decay=%g)", r.Delay, r.Decay)
}

// Chain is an ordered list of effects.
type Chain []Effect

// DefaultChain returns mono followed by the default reverb.
func DefaultChain() Chain {
	return Chain{
		Mono{},
		Reverb{Delay: DefaultReverbDelay, Decay: DefaultReverbDecay},
	}
}

// Apply runs every effect in order and stops at the first failure. Effects
// that already ran stay applied.
func (c Chain) Apply(f *wav.File) error {
	for i, e := range c {
		if err := e.Apply(f); err != nil {
			return fmt.Errorf("effect %d (%v): %w", i, e, err)
		}
	}

	return nil
}

func (c Chain) String() string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = fmt.Sprint(e)
	}

	return strings.Join(names, " -> ")
}

type chainDoc struct {
	Effects []effectDoc `yaml:"effects"`
}

type effectDoc struct {
	Type  string   `yaml:"type"`
	Delay *float64 `yaml:"delay,omitempty"`
	Decay *float32 `yaml:"decay,omitempty"`
}

// LoadChain reads an effect chain from YAML:
//
//	effects:
//	  - type: mono
//	  - type: reverb
//	    delay: 0.5
//	    decay: 0.6
//
// Unknown keys and effect types are rejected, and reverb entries must give
// a finite, non-negative delay and decay.
func LoadChain(r io.Reader) (Chain, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc chainDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidChain)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidChain, err)
	}

	if len(doc.Effects) == 0 {
		return nil, fmt.Errorf("%w: no effects", ErrInvalidChain)
	}

	chain := make(Chain, 0, len(doc.Effects))
	for i, e := range doc.Effects {
		effect, err := e.build()
		if err != nil {
			return nil, fmt.Errorf("%w: effect %d: %w", ErrInvalidChain, i, err)
		}
		chain = append(chain, effect)
	}

	return chain, nil
}

// MarshalYAML writes the chain in the form LoadChain reads.
func (c Chain) MarshalYAML() (any, error) {
	doc := chainDoc{Effects: make([]effectDoc, 0, len(c))}
	for i, e := range c {
		switch e := e.(type) {
		case Mono:
			doc.Effects = append(doc.Effects, effectDoc{Type: "mono"})
		case Reverb:
			doc.Effects = append(doc.Effects, effectDoc{Type: "reverb", Delay: &e.Delay, Decay: &e.Decay})
		default:
			return nil, fmt.Errorf("%w: effect %d (%T) has no YAML form", ErrInvalidChain, i, e)
		}
	}

	return doc, nil
}

func (e effectDoc) build() (Effect, error) {
	switch strings.ToLower(e.Type) {
	case "mono":
		if e.Delay != nil || e.Decay != nil {
			return nil, errors.New("mono takes no parameters")
		}
		return Mono{}, nil
	case "reverb":
		if e.Delay == nil || e.Decay == nil {
			return nil, errors.New("reverb needs delay and decay")
		}
		if !validParam(*e.Delay) || !validParam(float64(*e.Decay)) {
			return nil, fmt.Errorf("reverb delay %g and decay %g must be finite and non-negative",
				*e.Delay, *e.Decay)
		}
		return Reverb{Delay: *e.Delay, Decay: *e.Decay}, nil
	case "":
		return nil, errors.New("missing type")
	default:
		return nil, fmt.Errorf("unknown type %q", e.Type)
	}
}

func validParam(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
