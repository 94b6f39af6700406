// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/wavfx/utils"
)

// lowPassAlpha is the one-pole filter coefficient used before downsampling.
const lowPassAlpha float32 = 0.5

// Resample converts every channel of b from srcRate to dstRate using
// Catmull-Rom cubic interpolation. When downsampling each channel is first
// smoothed with a one-pole low-pass filter. Edge frames are repeated past
// either end of the signal, and results are rounded and saturated to int16.
//
// The output holds ceil(n * dstRate / srcRate) frames for n input frames.
// b is not modified; equal rates return a copy.
func Resample(b *Buffer, srcRate, dstRate int) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	if srcRate <= 0 || dstRate <= 0 || int64(srcRate) > math.MaxUint32 || int64(dstRate) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: resampling %d Hz to %d Hz", ErrInvalidParameters, srcRate, dstRate)
	}

	if srcRate == dstRate {
		return b.Clone(), nil
	}

	n := b.SamplesPerChannel()
	outFrames := int((uint64(n)*uint64(dstRate) + uint64(srcRate) - 1) / uint64(srcRate))
	ratio := float64(srcRate) / float64(dstRate)

	channels := make([][]int16, len(b.Channels))
	for c, ch := range b.Channels {
		channels[c] = resampleChannel(ch, outFrames, ratio, ratio > 1)
	}

	return &Buffer{Channels: channels}, nil
}

func resampleChannel(samples []int16, outFrames int, ratio float64, lowPass bool) []int16 {
	out := make([]int16, outFrames)
	if len(samples) == 0 {
		return out
	}

	x := make([]float32, len(samples))
	for i, s := range samples {
		x[i] = float32(s)
	}

	if lowPass {
		// seeded with the first sample to avoid a warm-up transient
		state := x[0]
		for i := range x {
			x[i] = lowPassAlpha*x[i] + (1-lowPassAlpha)*state
			state = x[i]
		}
	}

	last := len(x) - 1
	at := func(i int) float32 {
		return x[min(max(i, 0), last)]
	}

	for j := range out {
		pos := float64(j) * ratio
		i := int(pos)
		frac := float32(pos - float64(i))

		v := utils.CubicInterpolate(at(i-1), at(i), at(i+1), at(i+2), frac)
		out[j] = utils.TruncToInt16(float32(math.Round(float64(v))))
	}

	return out
}
