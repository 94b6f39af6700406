// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ik5/wavfx/audio"
)

// Decoder decodes canonical WAV streams for an audio.Registry. It applies the
// same strict header validation as Open.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, err
	}

	return &audio.Clip{SampleRate: f.SampleRate(), Samples: f.Buffer()}, nil
}

// LenientDecoder decodes any 16-bit PCM WAV stream through Import.
type LenientDecoder struct{}

func (LenientDecoder) Decode(r io.Reader) (*audio.Clip, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		// go-audio requires io.ReadSeeker
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
		}
		rs = bytes.NewReader(data)
	}

	f, err := Import(rs)
	if err != nil {
		return nil, err
	}

	return &audio.Clip{SampleRate: f.SampleRate(), Samples: f.Buffer()}, nil
}
