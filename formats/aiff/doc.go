// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF (Audio Interchange File Format) files into
// audio.Clip values.
//
// Decoding is done by github.com/go-audio/aiff. Only 16-bit PCM is
// accepted; other bit depths fail with ErrOnlyPCM16bitSupported. The
// decoded clip keeps the file's sample rate and channel count, so it can be
// handed to wav.NewFile and processed like any WAV input:
//
//	clip, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	file, err := wav.NewFile(clip.SampleRate, clip.Samples)
//
// AIFF stores samples big-endian and the sample rate as an 80-bit float;
// both are handled by the underlying decoder. AIFF-C (compressed) files are
// not supported, and there is no encoder.
package aiff
