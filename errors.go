// SPDX-License-Identifier: EPL-2.0

package wavfx

import "errors"

var (
	// ErrInvalidChain indicates an effect chain description that cannot be built
	ErrInvalidChain = errors.New("invalid effect chain")

	// ErrUnsupportedInput indicates an input file whose format has no decoder
	ErrUnsupportedInput = errors.New("unsupported input format")
)
