// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"os"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/wavfx/audio"
)

// Import reads a 16-bit PCM WAV stream whose chunk layout is not the canonical
// 44-byte one, for example files carrying LIST or JUNK chunks before the
// data. The returned File is canonical: saving it writes a 44-byte header.
func Import(rs io.ReadSeeker) (*File, error) {
	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		if err := dec.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedHeader, err)
		}
		return nil, fmt.Errorf("%w: not a usable RIFF/WAVE stream", ErrMalformedHeader)
	}

	if dec.WavAudioFormat != FormatPCM || dec.BitDepth != BitsPerSample {
		return nil, fmt.Errorf("%w: format %d with %d bits per sample",
			ErrUnsupportedFormat, dec.WavAudioFormat, dec.BitDepth)
	}

	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}

	samples, err := audio.FromIntBuffer(pcm)
	if err != nil {
		return nil, err
	}

	return NewFile(int(dec.SampleRate), samples)
}

// ImportFile is Import for a path. The returned File keeps the path, so Save
// rewrites it in canonical form.
func ImportFile(path string) (*File, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}
	defer in.Close()

	f, err := Import(in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path

	return f, nil
}
