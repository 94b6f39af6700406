// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile is returned when the FORM/AIFF container cannot be read.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrOnlyPCM16bitSupported is returned for sample sizes other than 16 bits.
	ErrOnlyPCM16bitSupported = errors.New("only 16-bit PCM AIFF is supported")

	// ErrUnsupportedAiffLayout is returned when the COMM chunk describes no channels.
	ErrUnsupportedAiffLayout = errors.New("AIFF file has no usable channel layout")
)
