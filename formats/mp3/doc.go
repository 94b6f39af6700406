// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files into audio.Clip values.
//
// Decoding is done by github.com/hajimehoshi/go-mp3, which always yields
// 16-bit stereo PCM at the file's sample rate. The whole stream is decoded
// in one pass; a trailing half frame left by a short read is discarded.
//
//	clip, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	file, err := wav.NewFile(clip.SampleRate, clip.Samples)
//
// Mono MP3 sources come out as two identical channels, so downmixing them
// is lossless. There is no MP3 encoder.
package mp3
