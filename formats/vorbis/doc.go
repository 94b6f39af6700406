// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files into audio.Clip values.
//
// Decoding is done by github.com/jfreymuth/oggvorbis. Vorbis decodes to
// float samples, which are clamped to [-1, 1] and quantized to 16-bit PCM
// with utils.Float32ToInt16. Channel count and sample rate come from the
// stream header.
//
//	clip, err := vorbis.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	file, err := wav.NewFile(clip.SampleRate, clip.Samples)
package vorbis
