// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/wavfx/audio"
)

var (
	// ErrMalformedHeader is returned when fewer than HeaderSize bytes are available.
	ErrMalformedHeader = errors.New("malformed WAV header")

	// ErrHeaderValidation matches every *ValidationError with errors.Is.
	ErrHeaderValidation = errors.New("invalid WAV header")

	// ErrFileNotReadable wraps failures to open or read a WAV file.
	ErrFileNotReadable = errors.New("WAV file not readable")

	// ErrFileNotWritable wraps failures to create or write a WAV file.
	ErrFileNotWritable = errors.New("WAV file not writable")

	// ErrUnsupportedFormat is returned by Import for anything but 16-bit PCM.
	ErrUnsupportedFormat = errors.New("only PCM 16-bit supported")

	// ErrInvalidParameters is shared with the audio package.
	ErrInvalidParameters = audio.ErrInvalidParameters
)

// Reason identifies which header check failed.
type Reason string

const (
	ReasonNotRiff                Reason = "NotRiff"
	ReasonBadChunkSize           Reason = "BadChunkSize"
	ReasonNotWave                Reason = "NotWave"
	ReasonNotFmtChunk            Reason = "NotFmtChunk"
	ReasonUnsupportedAudioFormat Reason = "UnsupportedAudioFormat"
	ReasonBadSubchunk1Size       Reason = "BadSubchunk1Size"
	ReasonBadByteRate            Reason = "BadByteRate"
	ReasonBadBlockAlign          Reason = "BadBlockAlign"
	ReasonNotDataChunk           Reason = "NotDataChunk"
	ReasonBadSubchunk2Size       Reason = "BadSubchunk2Size"
	ReasonUnsupportedBitDepth    Reason = "UnsupportedBitDepth"
)

// ValidationError describes the first header field that failed validation.
type ValidationError struct {
	Reason   Reason
	Field    string
	Expected any
	Actual   any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s is %v, want %v",
		ErrHeaderValidation, e.Reason, e.Field, e.Actual, e.Expected)
}

// Is lets errors.Is match ErrHeaderValidation, or another *ValidationError
// with the same Reason.
func (e *ValidationError) Is(target error) bool {
	if target == ErrHeaderValidation {
		return true
	}

	other, ok := target.(*ValidationError)

	return ok && other.Reason == e.Reason
}

// ReasonOf returns the validation reason carried by err, if any.
func ReasonOf(err error) (Reason, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Reason, true
	}

	return "", false
}
