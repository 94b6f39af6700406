// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrTruncatedData is returned when raw PCM bytes do not form whole frames.
	ErrTruncatedData = errors.New("PCM data is not a whole number of frames")

	// ErrChannelLengthMismatch is returned when channels hold different sample counts.
	ErrChannelLengthMismatch = errors.New("channels have different lengths")

	// ErrUnsupportedChannelLayout is returned by effects that need a specific channel count.
	ErrUnsupportedChannelLayout = errors.New("unsupported channel layout")

	// ErrInvalidBufferState is returned when a buffer has no channels or uneven channels.
	ErrInvalidBufferState = errors.New("invalid sample buffer state")

	// ErrInvalidParameters is returned for out of range arguments.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrDegenerateSignal is returned when reverb normalization finds a zero peak.
	ErrDegenerateSignal = errors.New("signal peak is zero, cannot normalize")
)
