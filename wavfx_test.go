// SPDX-License-Identifier: EPL-2.0

package wavfx

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavfx/audio"
	"github.com/ik5/wavfx/formats/wav"
	"github.com/ik5/wavfx/internal/audiotest"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	assert.Equal(t, []string{"aif", "aiff", "mp3", "ogg", "wav", "wave"}, r.Formats())

	dec, ok := r.Get(".WAV")
	require.True(t, ok)
	assert.IsType(t, wav.Decoder{}, dec)
}

func stereoWAV(t *testing.T) string {
	t.Helper()

	channels := audiotest.SineChannels(8000, 2, 8000, 440, 12000)
	return audiotest.WriteFile(t, "in.wav", audiotest.WAVBytes(8000, 2, audiotest.Interleave(channels)))
}

func TestLoad_WAV(t *testing.T) {
	t.Parallel()

	path := stereoWAV(t)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path())
	assert.Equal(t, 8000, f.SampleRate())
	assert.True(t, f.IsStereo())
}

func TestLoad_JunkChunk(t *testing.T) {
	t.Parallel()

	data := audiotest.WAVWithJunkChunk(8000, 1, []int16{1, 2, 3})
	path := audiotest.WriteFile(t, "junk.wav", data)

	_, err := Load(path)
	assert.ErrorIs(t, err, wav.ErrHeaderValidation)

	f, err := Load(path, WithLenient())
	require.NoError(t, err)
	assert.Equal(t, [][]int16{{1, 2, 3}}, f.Buffer().Channels)
	assert.Equal(t, path, f.Path())
}

func TestLoad_WithSampleRate(t *testing.T) {
	t.Parallel()

	path := stereoWAV(t)

	tests := []struct {
		name       string
		rate       int
		wantRate   int
		wantFrames int
	}{
		{"unset keeps input rate", 0, 8000, 8000},
		{"same rate", 8000, 8000, 8000},
		{"upsample", 16000, 16000, 16000},
		{"downsample", 4000, 4000, 4000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := Load(path, WithSampleRate(tt.rate))
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, f.SampleRate())
			assert.Equal(t, tt.wantFrames, f.Buffer().SamplesPerChannel())
			assert.True(t, f.IsStereo())
			assert.Equal(t, path, f.Path())
		})
	}
}

func TestLoad_WithInvalidSampleRate(t *testing.T) {
	t.Parallel()

	_, err := Load(stereoWAV(t), WithSampleRate(-8000))
	assert.ErrorIs(t, err, audio.ErrInvalidParameters)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := audiotest.WriteFile(t, "notes.txt", []byte("hello"))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedInput)

	_, err = Load(filepath.Join(t.TempDir(), "noext"))
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

type fakeDecoder struct {
	clip *audio.Clip
	err  error
}

func (d fakeDecoder) Decode(r io.Reader) (*audio.Clip, error) {
	if _, err := io.ReadAll(r); err != nil {
		return nil, err
	}

	return d.clip, d.err
}

func TestLoad_Registry(t *testing.T) {
	t.Parallel()

	reg := audio.NewRegistry()
	reg.Register("raw", fakeDecoder{clip: &audio.Clip{
		SampleRate: 22050,
		Samples:    audio.NewBuffer([]int16{1, 2}, []int16{3, 4}),
	}})
	path := audiotest.WriteFile(t, "in.RAW", []byte("anything"))

	f, err := Load(path, WithRegistry(reg))
	require.NoError(t, err)
	assert.Equal(t, 22050, f.SampleRate())
	assert.Equal(t, [][]int16{{1, 2}, {3, 4}}, f.Buffer().Channels)
	assert.Empty(t, f.Path())

	// the default registry has no raw decoder
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrUnsupportedInput)
}

func TestLoad_DecoderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	reg := audio.NewRegistry()
	reg.Register("raw", fakeDecoder{err: boom})
	path := audiotest.WriteFile(t, "in.raw", nil)

	_, err := Load(path, WithRegistry(reg))
	assert.ErrorIs(t, err, boom)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.wav"))
	assert.ErrorIs(t, err, wav.ErrFileNotReadable)

	_, err = Load(filepath.Join(dir, "missing.mp3"))
	assert.ErrorIs(t, err, wav.ErrFileNotReadable)
}

func TestProcess_DefaultChain(t *testing.T) {
	t.Parallel()

	in := stereoWAV(t)
	out := filepath.Join(t.TempDir(), "out.wav")

	require.NoError(t, Process(context.Background(), in, out, DefaultChain()))

	f, err := wav.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 1, f.ChannelCount())
	assert.Equal(t, 8000, f.SampleRate())
	assert.Equal(t, 8000, f.Buffer().SamplesPerChannel())

	// the scanned region peaks at the reverb target level
	var peak int16
	for _, s := range f.Buffer().Channels[0][:8000-4000] {
		peak = max(peak, s, -s)
	}
	assert.InDelta(t, 30000, int(peak), 1)

	// input untouched
	src, err := wav.Open(in)
	require.NoError(t, err)
	assert.True(t, src.IsStereo())
}

func TestProcess_WithSampleRate(t *testing.T) {
	t.Parallel()

	in := stereoWAV(t)
	out := filepath.Join(t.TempDir(), "out.wav")

	require.NoError(t, Process(context.Background(), in, out, DefaultChain(), WithSampleRate(16000)))

	f, err := wav.Open(out)
	require.NoError(t, err)
	assert.Equal(t, 16000, f.SampleRate())
	assert.Equal(t, 1, f.ChannelCount())
	assert.Equal(t, 16000, f.Buffer().SamplesPerChannel())
}

func TestProcess_EffectFailure(t *testing.T) {
	t.Parallel()

	in := audiotest.WriteFile(t, "mono.wav", audiotest.WAVBytes(8000, 1, []int16{1, 2, 3}))
	out := filepath.Join(t.TempDir(), "out.wav")

	err := Process(context.Background(), in, out, DefaultChain())
	assert.ErrorIs(t, err, audio.ErrUnsupportedChannelLayout)
	assert.NoFileExists(t, out)
}

func TestProcess_Cancelled(t *testing.T) {
	t.Parallel()

	in := stereoWAV(t)
	out := filepath.Join(t.TempDir(), "out.wav")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Process(ctx, in, out, DefaultChain())
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, out)
}

func TestProcess_EmptyChainCopies(t *testing.T) {
	t.Parallel()

	in := stereoWAV(t)
	out := filepath.Join(t.TempDir(), "out.wav")

	require.NoError(t, Process(context.Background(), in, out, nil))

	want, err := os.ReadFile(in)
	require.NoError(t, err)
	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProcess_NotWritable(t *testing.T) {
	t.Parallel()

	in := stereoWAV(t)
	out := filepath.Join(t.TempDir(), "missing", "out.wav")

	err := Process(context.Background(), in, out, Chain{Mono{}})
	assert.ErrorIs(t, err, wav.ErrFileNotWritable)
}
