// SPDX-License-Identifier: EPL-2.0

// Package wavfx loads audio files, runs them through a chain of effects and
// writes the result as a canonical 16-bit PCM WAV file.
//
// # Quick Start
//
// The default chain downmixes stereo to mono and adds a half-second
// feedback reverb:
//
//	err := wavfx.Process(ctx, "in.wav", "out.wav", wavfx.DefaultChain())
//
// # Effects
//
// An Effect transforms a *wav.File in place. The built-in effects are Mono
// and Reverb; a Chain applies several in order. Chains can be described in
// YAML and read with LoadChain:
//
//	effects:
//	  - type: mono
//	  - type: reverb
//	    delay: 0.5
//	    decay: 0.6
//
// # Inputs
//
// Load picks a reader by file extension. WAV files are validated strictly
// against the 44-byte canonical header unless WithLenient is given. AIFF,
// MP3 and Ogg Vorbis inputs are decoded through DefaultRegistry, or through
// the registry passed with WithRegistry, and always written out as WAV.
// WithSampleRate resamples every input to one rate before the chain runs.
//
// # Sub-packages
//
//   - audio: sample buffers, downmix, reverb, resampling and the decoder registry
//   - formats/wav: header codec, validation and file I/O
//   - formats/aiff, formats/mp3, formats/vorbis: decoders into audio.Clip
package wavfx
