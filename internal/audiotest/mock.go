// SPDX-License-Identifier: EPL-2.0

// Package audiotest holds fixtures shared by the package tests.
//
// It does not import the audio or wav packages so that their internal tests
// can use it without import cycles: generators return plain channel slices
// and WAV files are assembled field by field with encoding/binary.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Header mirrors the canonical 44-byte WAV header. Every field is written as
// given, which makes it easy to build deliberately broken files.
type Header struct {
	ChunkID       string
	ChunkSize     uint32
	Format        string
	Subchunk1ID   string
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   string
	Subchunk2Size uint32
}

// CanonicalHeader returns a consistent 16-bit PCM header for a file holding
// samples interleaved values.
func CanonicalHeader(sampleRate, channels, samples int) Header {
	dataSize := uint32(samples * 2)

	return Header{
		ChunkID:       "RIFF",
		ChunkSize:     36 + dataSize,
		Format:        "WAVE",
		Subchunk1ID:   "fmt ",
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * channels * 2),
		BlockAlign:    uint16(channels * 2),
		BitsPerSample: 16,
		Subchunk2ID:   "data",
		Subchunk2Size: dataSize,
	}
}

func writeTag(buf *bytes.Buffer, tag string) {
	var b [4]byte
	copy(b[:], tag)
	buf.Write(b[:])
}

// Bytes encodes the header in little-endian order.
func (h Header) Bytes() []byte {
	buf := new(bytes.Buffer)

	writeTag(buf, h.ChunkID)
	binary.Write(buf, binary.LittleEndian, h.ChunkSize)
	writeTag(buf, h.Format)
	writeTag(buf, h.Subchunk1ID)
	binary.Write(buf, binary.LittleEndian, h.Subchunk1Size)
	binary.Write(buf, binary.LittleEndian, h.AudioFormat)
	binary.Write(buf, binary.LittleEndian, h.NumChannels)
	binary.Write(buf, binary.LittleEndian, h.SampleRate)
	binary.Write(buf, binary.LittleEndian, h.ByteRate)
	binary.Write(buf, binary.LittleEndian, h.BlockAlign)
	binary.Write(buf, binary.LittleEndian, h.BitsPerSample)
	writeTag(buf, h.Subchunk2ID)
	binary.Write(buf, binary.LittleEndian, h.Subchunk2Size)

	return buf.Bytes()
}

// File returns the header followed by the interleaved samples.
func (h Header) File(interleaved []int16) []byte {
	buf := bytes.NewBuffer(h.Bytes())
	for _, s := range interleaved {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

// WAVBytes builds a canonical 16-bit PCM WAV file.
func WAVBytes(sampleRate, channels int, interleaved []int16) []byte {
	return CanonicalHeader(sampleRate, channels, len(interleaved)).File(interleaved)
}

// WAVWithJunkChunk builds a 16-bit PCM WAV file with a JUNK chunk between the
// fmt and data chunks, so the data does not start at byte 44.
func WAVWithJunkChunk(sampleRate, channels int, interleaved []int16) []byte {
	junk := make([]byte, 28)
	dataSize := uint32(len(interleaved) * 2)
	h := CanonicalHeader(sampleRate, channels, len(interleaved))

	buf := new(bytes.Buffer)
	writeTag(buf, "RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(4+24+8+len(junk)+8)+dataSize)
	writeTag(buf, "WAVE")

	// fmt chunk: bytes 12..36 of a canonical header
	buf.Write(h.Bytes()[12:36])

	writeTag(buf, "JUNK")
	binary.Write(buf, binary.LittleEndian, uint32(len(junk)))
	buf.Write(junk)

	writeTag(buf, "data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	for _, s := range interleaved {
		binary.Write(buf, binary.LittleEndian, s)
	}

	return buf.Bytes()
}

// Interleave flattens channels in L,R,L,R order. All channels must have the
// same length.
func Interleave(channels [][]int16) []int16 {
	if len(channels) == 0 {
		return nil
	}

	out := make([]int16, 0, len(channels)*len(channels[0]))
	for i := range channels[0] {
		for _, ch := range channels {
			out = append(out, ch[i])
		}
	}

	return out
}

// Channels generates numChannels channels of length samples using waveform.
func Channels(numChannels, samples int, waveform func(sample, channel int) int16) [][]int16 {
	out := make([][]int16, numChannels)
	for c := range out {
		out[c] = make([]int16, samples)
		for i := range samples {
			out[c][i] = waveform(i, c)
		}
	}

	return out
}

// SineChannels generates a sine tone with the given peak amplitude.
func SineChannels(sampleRate, numChannels, samples int, frequency float64, amplitude int16) [][]int16 {
	return Channels(numChannels, samples, func(sample, _ int) int16 {
		t := float64(sample) / float64(sampleRate)
		return int16(float64(amplitude) * math.Sin(2*math.Pi*frequency*t))
	})
}

// SilentChannels generates all-zero channels.
func SilentChannels(numChannels, samples int) [][]int16 {
	return Channels(numChannels, samples, func(int, int) int16 { return 0 })
}

// WriteFile stores data in a fresh temporary directory and returns its path.
func WriteFile(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		tb.Fatalf("writing fixture %s: %v", path, err)
	}

	return path
}
