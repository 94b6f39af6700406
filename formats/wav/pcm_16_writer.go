// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/ik5/wavfx/audio"
)

// Encode writes b as a canonical 16-bit PCM WAV stream: a header computed
// with FillHeader followed by the interleaved samples.
func Encode(w io.Writer, sampleRate int, b *audio.Buffer) error {
	_, err := encode(w, sampleRate, b)
	return err
}

func encode(w io.Writer, sampleRate int, b *audio.Buffer) (Header, error) {
	if err := b.Validate(); err != nil {
		return Header{}, err
	}

	h, err := FillHeader(b.NumChannels(), sampleRate, b.SamplesPerChannel())
	if err != nil {
		return Header{}, err
	}

	raw, err := b.Interleave()
	if err != nil {
		return Header{}, err
	}

	// Write header in one operation
	if _, err := w.Write(h.Bytes()); err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrFileNotWritable, err)
	}

	if _, err := w.Write(raw); err != nil {
		return Header{}, fmt.Errorf("%w: %w", ErrFileNotWritable, err)
	}

	return h, nil
}

// WriteWAV16 writes a mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return Encode(w, sampleRate, audio.NewBuffer(samples))
}
