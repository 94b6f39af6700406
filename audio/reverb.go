// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"

	"github.com/ik5/wavfx/utils"
)

// ReverbPeak is the magnitude the loudest scanned sample is scaled to.
const ReverbPeak float32 = 30000.0

// ApplyReverb adds a feedback echo to every channel of b.
//
// For each channel the delay in samples is floor(delaySeconds * sampleRate).
// A single forward pass adds decay * work[i] to work[i+delay], so echoes feed
// back into later echoes. The result is then normalized so that the largest
// magnitude among the first len-delay samples becomes ReverbPeak, and every
// sample is truncated toward zero (saturating at the int16 limits).
//
// A silent scanned region, or feedback that overflows float32, fails with
// ErrDegenerateSignal.
//
// All channels are computed before any is written back: when an error is
// returned b is unchanged.
func ApplyReverb(b *Buffer, sampleRate int, delaySeconds float64, decay float32) error {
	if err := b.Validate(); err != nil {
		return err
	}

	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidParameters, sampleRate)
	}

	if delaySeconds < 0 || math.IsNaN(delaySeconds) || math.IsInf(delaySeconds, 0) {
		return fmt.Errorf("%w: delay %v seconds", ErrInvalidParameters, delaySeconds)
	}

	if math.IsNaN(float64(decay)) || math.IsInf(float64(decay), 0) {
		return fmt.Errorf("%w: decay %v", ErrInvalidParameters, decay)
	}

	// longer delays leave nothing to scan either way
	delay := int(min(math.Floor(delaySeconds*float64(sampleRate)), math.MaxInt32))

	out := make([][]int16, len(b.Channels))
	for c, ch := range b.Channels {
		res, err := reverbChannel(ch, delay, decay)
		if err != nil {
			return fmt.Errorf("channel %d: %w", c, err)
		}
		out[c] = res
	}

	b.Channels = out

	return nil
}

func reverbChannel(samples []int16, delay int, decay float32) ([]int16, error) {
	work := make([]float32, len(samples))
	for i, s := range samples {
		work[i] = float32(s)
	}

	// scanned region: samples that are a source of feedback
	scan := max(len(work)-delay, 0)

	for i := range scan {
		work[i+delay] += decay * work[i]
	}

	for i, w := range work {
		if math.IsInf(float64(w), 0) || math.IsNaN(float64(w)) {
			return nil, fmt.Errorf("%w: feedback overflows at sample %d", ErrDegenerateSignal, i)
		}
	}

	var peak float32
	for i := range scan {
		if m := float32(math.Abs(float64(work[i]))); m > peak {
			peak = m
		}
	}

	if peak == 0 {
		return nil, fmt.Errorf("%w: %d samples scanned", ErrDegenerateSignal, scan)
	}

	scale := ReverbPeak / peak
	res := make([]int16, len(work))
	for i, w := range work {
		res[i] = utils.TruncToInt16(scale * w)
	}

	return res, nil
}
