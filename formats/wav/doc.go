// SPDX-License-Identifier: EPL-2.0

// Package wav reads, validates and writes canonical 16-bit PCM WAV files.
//
// # Canonical Layout
//
// A canonical file is a fixed 44-byte header followed directly by the
// interleaved little-endian sample data:
//
//	offset  size  field
//	0       4     "RIFF"
//	4       4     ChunkSize (file size - 8)
//	8       4     "WAVE"
//	12      4     "fmt "
//	16      4     Subchunk1Size (16)
//	20      2     AudioFormat (1, PCM)
//	22      2     NumChannels
//	24      4     SampleRate
//	28      4     ByteRate
//	32      2     BlockAlign
//	34      2     BitsPerSample (16)
//	36      4     "data"
//	40      4     Subchunk2Size (file size - 44)
//
// Header.Validate checks these fields in that order and reports the first
// failure as a *ValidationError carrying a Reason. All validation errors
// match ErrHeaderValidation with errors.Is; ReasonOf extracts the reason:
//
//	f, err := wav.Open("input.wav")
//	if reason, ok := wav.ReasonOf(err); ok {
//	    fmt.Println("rejected:", reason)
//	}
//
// # Files
//
// Open and Parse load a whole file into memory and split the samples into
// per-channel slices. File.Mono and File.Reverb transform the samples in
// place, and SaveToFile writes them back with a freshly computed header.
// An effect that fails leaves the samples untouched.
//
//	f, err := wav.Open("in.wav")
//	if err != nil {
//	    return err
//	}
//	if err := f.Mono(); err != nil {
//	    return err
//	}
//	if err := f.Reverb(0.5, 0.6); err != nil {
//	    return err
//	}
//	return f.SaveToFile("out.wav")
//
// # Non-canonical Input
//
// Files with extra chunks (LIST, JUNK, fact) between "fmt " and "data" fail
// strict validation. Import reads them through github.com/go-audio/wav and
// returns a File that saves back in canonical form. LenientDecoder exposes
// the same path as an audio.Decoder.
//
// # Writing
//
// Encode writes any valid audio.Buffer; WriteWAV16 is the mono shorthand.
// Only 16-bit PCM is produced.
package wav
