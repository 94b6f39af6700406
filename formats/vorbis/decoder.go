// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/wavfx/audio"
)

// readChunk is the number of interleaved samples requested per Read.
const readChunk = 4096

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeClip(dec)
}

// decodeClip drains dec and quantizes the float samples to 16-bit PCM.
// Read reports the number of interleaved values written, not frames.
func decodeClip(dec oggReader) (*audio.Clip, error) {
	numChannels := dec.Channels()
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: %d channels", audio.ErrInvalidParameters, numChannels)
	}

	buf := make([]float32, readChunk)
	var all []float32

	for {
		n, err := dec.Read(buf)
		all = append(all, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis samples: %w", err)
		}
		if n == 0 {
			break
		}
	}

	samples, err := audio.FromFloat32(all, numChannels)
	if err != nil {
		return nil, err
	}

	return &audio.Clip{SampleRate: dec.SampleRate(), Samples: samples}, nil
}
