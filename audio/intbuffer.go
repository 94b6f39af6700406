// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// FromIntBuffer de-interleaves a go-audio IntBuffer holding 16-bit values.
func FromIntBuffer(ib *goaudio.IntBuffer) (*Buffer, error) {
	if ib == nil || ib.Format == nil {
		return nil, fmt.Errorf("%w: missing buffer format", ErrInvalidParameters)
	}

	if ib.SourceBitDepth != 0 && ib.SourceBitDepth != 16 {
		return nil, fmt.Errorf("%w: bit depth %d, want 16",
			ErrInvalidParameters, ib.SourceBitDepth)
	}

	numChannels := ib.Format.NumChannels
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: channel count %d, want at least 1",
			ErrInvalidParameters, numChannels)
	}

	if len(ib.Data)%numChannels != 0 {
		return nil, fmt.Errorf("%w: %d samples across %d channels",
			ErrTruncatedData, len(ib.Data), numChannels)
	}

	frames := len(ib.Data) / numChannels
	channels := make([][]int16, numChannels)
	for c := range channels {
		channels[c] = make([]int16, frames)
	}

	for i, v := range ib.Data {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, fmt.Errorf("%w: sample %d out of 16-bit range", ErrInvalidParameters, v)
		}
		channels[i%numChannels][i/numChannels] = int16(v)
	}

	return &Buffer{Channels: channels}, nil
}
