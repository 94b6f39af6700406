// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"

	"github.com/ik5/wavfx/utils"
)

// BytesPerSample is the size of one 16-bit PCM sample.
const BytesPerSample = 2

// Buffer holds de-interleaved 16-bit samples, one slice per channel.
//
// Every channel is expected to hold the same number of samples. Effects and
// Interleave check this before touching the data.
type Buffer struct {
	Channels [][]int16
}

// NewBuffer wraps the given channels without copying them.
func NewBuffer(channels ...[]int16) *Buffer {
	return &Buffer{Channels: channels}
}

// NumChannels returns the number of channels.
func (b *Buffer) NumChannels() int { return len(b.Channels) }

// SamplesPerChannel returns the length of the first channel, or 0 when the
// buffer is empty.
func (b *Buffer) SamplesPerChannel() int {
	if len(b.Channels) == 0 {
		return 0
	}

	return len(b.Channels[0])
}

// Validate reports ErrInvalidBufferState unless the buffer has at least one
// channel and all channels have the same length.
func (b *Buffer) Validate() error {
	if len(b.Channels) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalidBufferState)
	}

	if err := b.checkLengths(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBufferState, err)
	}

	return nil
}

func (b *Buffer) checkLengths() error {
	want := b.SamplesPerChannel()
	for c, ch := range b.Channels {
		if len(ch) != want {
			return fmt.Errorf("%w: channel %d has %d samples, want %d",
				ErrChannelLengthMismatch, c, len(ch), want)
		}
	}

	return nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	channels := make([][]int16, len(b.Channels))
	for c, ch := range b.Channels {
		channels[c] = append([]int16(nil), ch...)
	}

	return &Buffer{Channels: channels}
}

// Deinterleave splits little-endian interleaved 16-bit PCM into channels.
// Sample i of channel c is read from interleaved position numChannels*i+c.
func Deinterleave(raw []byte, numChannels int) (*Buffer, error) {
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: channel count %d, want at least 1",
			ErrInvalidParameters, numChannels)
	}

	frameSize := numChannels * BytesPerSample
	if len(raw)%frameSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes with %d-byte frames",
			ErrTruncatedData, len(raw), frameSize)
	}

	samplesPerChannel := len(raw) / frameSize
	channels := make([][]int16, numChannels)
	for c := range channels {
		channels[c] = make([]int16, samplesPerChannel)
	}

	for i := range samplesPerChannel {
		base := i * frameSize
		for c := range numChannels {
			off := base + c*BytesPerSample
			channels[c][i] = int16(binary.LittleEndian.Uint16(raw[off : off+BytesPerSample]))
		}
	}

	return &Buffer{Channels: channels}, nil
}

// Interleave packs the channels back into little-endian interleaved PCM.
func (b *Buffer) Interleave() ([]byte, error) {
	if len(b.Channels) == 0 {
		return nil, fmt.Errorf("%w: no channels", ErrInvalidBufferState)
	}

	if err := b.checkLengths(); err != nil {
		return nil, err
	}

	numChannels := len(b.Channels)
	samplesPerChannel := b.SamplesPerChannel()
	frameSize := numChannels * BytesPerSample
	raw := make([]byte, samplesPerChannel*frameSize)

	for c, ch := range b.Channels {
		for i, s := range ch {
			off := i*frameSize + c*BytesPerSample
			binary.LittleEndian.PutUint16(raw[off:off+BytesPerSample], uint16(s))
		}
	}

	return raw, nil
}

// FromFloat32 builds a buffer from interleaved float samples in [-1, 1].
// A trailing partial frame is dropped.
func FromFloat32(interleaved []float32, numChannels int) (*Buffer, error) {
	if numChannels < 1 {
		return nil, fmt.Errorf("%w: channel count %d, want at least 1",
			ErrInvalidParameters, numChannels)
	}

	frames := len(interleaved) / numChannels
	channels := make([][]int16, numChannels)
	for c := range channels {
		channels[c] = make([]int16, frames)
	}

	for f := range frames {
		base := f * numChannels
		for c := range numChannels {
			channels[c][f] = utils.Float32ToInt16(interleaved[base+c])
		}
	}

	return &Buffer{Channels: channels}, nil
}
