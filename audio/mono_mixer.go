// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// DownmixToMono replaces a stereo buffer with a single channel holding the
// average of left and right.
//
// The average uses Go integer division, which truncates toward zero, so
// (-1 + 0) / 2 == 0 and (-3 + 0) / 2 == -1. The sum is taken in 32 bits and
// cannot overflow. On error the buffer is left untouched.
func DownmixToMono(b *Buffer) error {
	if b.NumChannels() != 2 {
		return fmt.Errorf("%w: got %d channels, want 2",
			ErrUnsupportedChannelLayout, b.NumChannels())
	}

	if err := b.Validate(); err != nil {
		return err
	}

	left, right := b.Channels[0], b.Channels[1]
	mono := make([]int16, len(left))

	for i := range mono {
		mono[i] = int16((int32(left[i]) + int32(right[i])) / 2)
	}

	b.Channels = [][]int16{mono}

	return nil
}
