// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/wavfx/audio"
)

// go-mp3 always produces 16-bit little-endian stereo.
const (
	channels   = 2
	frameBytes = channels * audio.BytesPerSample
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return decodeClip(dec)
}

func decodeClip(dec mp3Reader) (*audio.Clip, error) {
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 frames: %w", err)
	}

	// a short final read may leave half a frame behind
	raw = raw[:len(raw)-len(raw)%frameBytes]

	samples, err := audio.Deinterleave(raw, channels)
	if err != nil {
		return nil, err
	}

	return &audio.Clip{SampleRate: dec.SampleRate(), Samples: samples}, nil
}
