// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ik5/wavfx/audio"
)

// File is a 16-bit PCM WAV file held in memory.
//
// A File is not safe for concurrent use.
type File struct {
	header  Header
	samples *audio.Buffer
	path    string
}

// Open reads and validates the WAV file at path.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotReadable, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path

	return f, nil
}

// Parse decodes a complete canonical WAV file from memory. The header is
// validated against len(data) before any sample is read.
func Parse(data []byte) (*File, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}

	if err := h.Validate(int64(len(data))); err != nil {
		return nil, err
	}

	samples, err := audio.Deinterleave(data[HeaderSize:], int(h.NumChannels))
	if err != nil {
		return nil, err
	}

	return &File{header: h, samples: samples}, nil
}

// NewFile wraps decoded samples into a File that has no path yet.
func NewFile(sampleRate int, samples *audio.Buffer) (*File, error) {
	if err := samples.Validate(); err != nil {
		return nil, err
	}

	h, err := FillHeader(samples.NumChannels(), sampleRate, samples.SamplesPerChannel())
	if err != nil {
		return nil, err
	}

	return &File{header: h, samples: samples}, nil
}

// Header returns the header as last read or written.
func (f *File) Header() Header { return f.header }

// Buffer returns the sample buffer. Changes made through it are saved.
func (f *File) Buffer() *audio.Buffer { return f.samples }

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }

// SampleRate is carried over from the header. Only Resample changes it.
func (f *File) SampleRate() int { return int(f.header.SampleRate) }

// ChannelCount reflects the current buffer, not the header.
func (f *File) ChannelCount() int { return f.samples.NumChannels() }

// IsStereo reports whether the buffer currently holds two channels.
func (f *File) IsStereo() bool { return f.ChannelCount() == 2 }

// Mono downmixes a stereo file in place.
func (f *File) Mono() error {
	return audio.DownmixToMono(f.samples)
}

// Resample converts the samples to rate and updates the header to match. On
// error the file is unchanged.
func (f *File) Resample(rate int) error {
	samples, err := audio.Resample(f.samples, f.SampleRate(), rate)
	if err != nil {
		return err
	}

	h, err := FillHeader(samples.NumChannels(), rate, samples.SamplesPerChannel())
	if err != nil {
		return err
	}

	f.header = h
	f.samples = samples

	return nil
}

// Reverb applies audio.ApplyReverb with the file's sample rate.
func (f *File) Reverb(delaySeconds float64, decay float32) error {
	return audio.ApplyReverb(f.samples, f.SampleRate(), delaySeconds, decay)
}

// WriteTo encodes the file to w. It implements io.WriterTo.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	h, err := encode(cw, f.SampleRate(), f.samples)
	if err != nil {
		return cw.n, err
	}
	f.header = h

	return cw.n, nil
}

// SaveToFile writes the file to path, creating or truncating it. The buffer
// is checked and encoded before the file is touched. The path used by Save is
// not changed.
func (f *File) SaveToFile(path string) error {
	var buf bytes.Buffer

	h, err := encode(&buf, f.SampleRate(), f.samples)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrFileNotWritable, err)
	}
	f.header = h

	return nil
}

// Save writes the file back to Path.
func (f *File) Save() error {
	if f.path == "" {
		return fmt.Errorf("%w: file has no path", ErrInvalidParameters)
	}

	return f.SaveToFile(f.path)
}

// Dump writes the header listing to w.
func (f *File) Dump(w io.Writer) error {
	return f.header.Dump(w)
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
