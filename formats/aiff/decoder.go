// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/wavfx/audio"
)

// readChunk is the number of interleaved samples pulled per PCMBuffer call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*audio.Clip, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	// Read file info
	dec.ReadInfo()

	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("%w: got %d bits", ErrOnlyPCM16bitSupported, dec.BitDepth)
	}

	return decodeClip(dec)
}

// decodeClip drains dec into a Clip.
func decodeClip(dec aiffReader) (*audio.Clip, error) {
	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	buf := &goaudio.IntBuffer{
		Data:           make([]int, readChunk),
		Format:         format,
		SourceBitDepth: 16,
	}
	all := &goaudio.IntBuffer{Format: format, SourceBitDepth: 16}

	for {
		buf.Data = buf.Data[:cap(buf.Data)]

		n, err := dec.PCMBuffer(buf)
		all.Data = append(all.Data, buf.Data[:n]...)

		if err == io.EOF || (err == nil && n == 0) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding aiff samples: %w", err)
		}
	}

	// drop a trailing partial frame
	all.Data = all.Data[:len(all.Data)-len(all.Data)%format.NumChannels]

	samples, err := audio.FromIntBuffer(all)
	if err != nil {
		return nil, err
	}

	return &audio.Clip{SampleRate: format.SampleRate, Samples: samples}, nil
}
