// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory sample model and the effects that
// operate on it.
//
// This package contains the core audio processing building blocks:
//   - Buffer, de-interleaved 16-bit samples with one slice per channel
//   - Deinterleave and Interleave between file layout and processing layout
//   - DownmixToMono for stereo to mono conversion
//   - ApplyReverb, a feedback delay with peak normalization
//   - Clip, Decoder and Registry for format decoders
//
// # Buffers
//
// WAV files store samples interleaved (L,R,L,R,...). Effects work on one
// channel at a time, so data is split on load and packed again on save:
//
//	buf, err := audio.Deinterleave(raw, 2)
//	// buf.Channels[0] is left, buf.Channels[1] is right
//	raw, err = buf.Interleave()
//
// Every channel of a Buffer must hold the same number of samples. Interleave
// reports ErrChannelLengthMismatch otherwise, and the effects report
// ErrInvalidBufferState.
//
// # Effects
//
// Effects mutate the buffer in place and are all-or-nothing: when they return
// an error the buffer is unchanged.
//
//	if err := audio.DownmixToMono(buf); err != nil {
//	    // buf did not have exactly two channels
//	}
//
//	if err := audio.ApplyReverb(buf, 44100, 0.5, 0.6); err != nil {
//	    // ErrDegenerateSignal when the scanned region is silent
//	}
//
// The mono mix uses integer division, which truncates toward zero. The reverb
// works on float32 copies of the samples and writes back with truncation,
// saturating at the int16 limits.
//
// # go-audio
//
// FromIntBuffer de-interleaves github.com/go-audio/audio IntBuffer values,
// which is how the WAV importer and the AIFF decoder hand their samples over.
//
// # Resampling
//
// Resample returns a new Buffer at another sample rate, interpolating with
// utils.CubicInterpolate and low-pass filtering first when downsampling.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("mp3", mp3.Decoder{})
//	decoder, _ := registry.Get(".MP3")
//
// Keys are case-insensitive and a leading dot is ignored.
package audio
