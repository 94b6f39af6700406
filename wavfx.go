// SPDX-License-Identifier: EPL-2.0

package wavfx

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ik5/wavfx/audio"
	"github.com/ik5/wavfx/formats/aiff"
	"github.com/ik5/wavfx/formats/mp3"
	"github.com/ik5/wavfx/formats/vorbis"
	"github.com/ik5/wavfx/formats/wav"
	"github.com/ik5/wavfx/internal/logger"
)

// DefaultRegistry returns a registry with every built-in decoder.
func DefaultRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("wave", wav.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})

	return r
}

type options struct {
	lenient    bool
	sampleRate int
	registry   *audio.Registry
}

// Option configures Load and Process.
type Option func(*options)

// WithLenient accepts WAV files with extra chunks by importing them through
// go-audio/wav instead of rejecting them during strict validation.
func WithLenient() Option {
	return func(o *options) { o.lenient = true }
}

// WithSampleRate resamples every loaded input to rate. Inputs already at
// rate are left as they are.
func WithSampleRate(rate int) Option {
	return func(o *options) { o.sampleRate = rate }
}

// WithRegistry replaces the decoders used for non-WAV inputs.
func WithRegistry(r *audio.Registry) Option {
	return func(o *options) { o.registry = r }
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}

	return o
}

func isWAV(ext string) bool {
	return ext == "wav" || ext == "wave"
}

// Load opens path as a wav.File. WAV inputs keep their path, so File.Save
// writes back to them; other formats are decoded through the registry.
func Load(path string, opts ...Option) (*wav.File, error) {
	return newOptions(opts).load(path)
}

func (o *options) load(path string) (*wav.File, error) {
	f, err := o.decode(path)
	if err != nil {
		return nil, err
	}

	if o.sampleRate == 0 || o.sampleRate == f.SampleRate() {
		return f, nil
	}

	logger.Debug("resampling input", "path", path, "from", f.SampleRate(), "to", o.sampleRate)

	if err := f.Resample(o.sampleRate); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

func (o *options) decode(path string) (*wav.File, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	if isWAV(ext) {
		if o.lenient {
			return wav.ImportFile(path)
		}
		return wav.Open(path)
	}

	dec, ok := o.registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, path)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", wav.ErrFileNotReadable, err)
	}
	defer in.Close()

	clip, err := dec.Decode(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return wav.NewFile(clip.SampleRate, clip.Samples)
}

// Process loads in, applies chain and saves the result to out. The context
// is checked before each effect; once it is done nothing is written.
func Process(ctx context.Context, in, out string, chain Chain, opts ...Option) error {
	o := newOptions(opts)

	f, err := o.load(in)
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "loaded input",
		"path", in,
		"sample_rate", f.SampleRate(),
		"channels", f.ChannelCount(),
		"samples_per_channel", f.Buffer().SamplesPerChannel(),
	)

	for i, e := range chain {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		if err := e.Apply(f); err != nil {
			return fmt.Errorf("effect %d (%v): %w", i, e, err)
		}
		logger.Effect(ctx, fmt.Sprint(e), time.Since(start), "channels", f.ChannelCount())
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := f.SaveToFile(out); err != nil {
		return err
	}

	logger.InfoContext(ctx, "wrote output",
		"path", out,
		"bytes", f.Header().FileSize(),
		"effects", len(chain),
	)

	return nil
}
