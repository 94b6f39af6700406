// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sort"
	"strings"
	"sync"
)

// Clip is a fully decoded piece of 16-bit audio.
type Clip struct {
	// SampleRate of the clip in Hz.
	SampleRate int
	// Samples holds one slice per channel.
	Samples *Buffer
}

// Decoder constructs a Clip from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Clip, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
// Keys are case-insensitive and a leading dot is ignored, so file
// extensions can be used directly.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normalizeFormat(format)]
	return d, ok
}

// Formats returns the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	formats := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	return formats
}
