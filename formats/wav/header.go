// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
)

const (
	// HeaderSize is the size of the canonical PCM WAV header.
	HeaderSize = 44

	// FormatPCM is the only supported AudioFormat value.
	FormatPCM = 1

	// BitsPerSample is the only supported sample size.
	BitsPerSample = 16

	pcmSubchunk1Size = 16
	bytesPerSample   = BitsPerSample / 8
)

// Canonical chunk tags.
var (
	TagRIFF = [4]byte{'R', 'I', 'F', 'F'}
	TagWAVE = [4]byte{'W', 'A', 'V', 'E'}
	TagFmt  = [4]byte{'f', 'm', 't', ' '}
	TagData = [4]byte{'d', 'a', 't', 'a'}
)

// Header is the canonical 44-byte RIFF/WAVE header.
//
//	offset  size  field
//	0       4     ChunkID "RIFF"
//	4       4     ChunkSize
//	8       4     Format "WAVE"
//	12      4     Subchunk1ID "fmt "
//	16      4     Subchunk1Size
//	20      2     AudioFormat
//	22      2     NumChannels
//	24      4     SampleRate
//	28      4     ByteRate
//	32      2     BlockAlign
//	34      2     BitsPerSample
//	36      4     Subchunk2ID "data"
//	40      4     Subchunk2Size
//
// All integers are little-endian.
type Header struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	Subchunk2ID   [4]byte
	Subchunk2Size uint32
}

// ReadHeader decodes the first HeaderSize bytes of b. It does not validate
// the result, see Header.Validate.
func ReadHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < HeaderSize {
		return h, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedHeader, len(b), HeaderSize)
	}

	le := binary.LittleEndian

	copy(h.ChunkID[:], b[0:4])
	h.ChunkSize = le.Uint32(b[4:8])
	copy(h.Format[:], b[8:12])
	copy(h.Subchunk1ID[:], b[12:16])
	h.Subchunk1Size = le.Uint32(b[16:20])
	h.AudioFormat = le.Uint16(b[20:22])
	h.NumChannels = le.Uint16(b[22:24])
	h.SampleRate = le.Uint32(b[24:28])
	h.ByteRate = le.Uint32(b[28:32])
	h.BlockAlign = le.Uint16(b[32:34])
	h.BitsPerSample = le.Uint16(b[34:36])
	copy(h.Subchunk2ID[:], b[36:40])
	h.Subchunk2Size = le.Uint32(b[40:44])

	return h, nil
}

// Bytes encodes the header, the exact inverse of ReadHeader.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	le := binary.LittleEndian

	copy(b[0:4], h.ChunkID[:])
	le.PutUint32(b[4:8], h.ChunkSize)
	copy(b[8:12], h.Format[:])
	copy(b[12:16], h.Subchunk1ID[:])
	le.PutUint32(b[16:20], h.Subchunk1Size)
	le.PutUint16(b[20:22], h.AudioFormat)
	le.PutUint16(b[22:24], h.NumChannels)
	le.PutUint32(b[24:28], h.SampleRate)
	le.PutUint32(b[28:32], h.ByteRate)
	le.PutUint16(b[32:34], h.BlockAlign)
	le.PutUint16(b[34:36], h.BitsPerSample)
	copy(b[36:40], h.Subchunk2ID[:])
	le.PutUint32(b[40:44], h.Subchunk2Size)

	return b
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (h *Header) UnmarshalBinary(b []byte) error {
	parsed, err := ReadHeader(b)
	if err != nil {
		return err
	}
	*h = parsed

	return nil
}

func invalid(reason Reason, field string, expected, actual any) error {
	return &ValidationError{Reason: reason, Field: field, Expected: expected, Actual: actual}
}

func tag(t [4]byte) string { return fmt.Sprintf("%q", t[:]) }

// Validate checks the header against a file of fileSize bytes. Checks run in
// a fixed order and the first failure is returned as a *ValidationError.
func (h Header) Validate(fileSize int64) error {
	// 64-bit arithmetic so that oversized fields cannot wrap around.
	byteRate := uint64(h.SampleRate) * uint64(h.NumChannels) * uint64(h.BitsPerSample) / 8
	blockAlign := uint64(h.NumChannels) * uint64(h.BitsPerSample) / 8

	switch {
	case h.ChunkID != TagRIFF:
		return invalid(ReasonNotRiff, "ChunkID", tag(TagRIFF), tag(h.ChunkID))
	case int64(h.ChunkSize) != fileSize-8:
		return invalid(ReasonBadChunkSize, "ChunkSize", fileSize-8, h.ChunkSize)
	case h.Format != TagWAVE:
		return invalid(ReasonNotWave, "Format", tag(TagWAVE), tag(h.Format))
	case h.Subchunk1ID != TagFmt:
		return invalid(ReasonNotFmtChunk, "Subchunk1ID", tag(TagFmt), tag(h.Subchunk1ID))
	case h.AudioFormat != FormatPCM:
		return invalid(ReasonUnsupportedAudioFormat, "AudioFormat", FormatPCM, h.AudioFormat)
	case h.Subchunk1Size != pcmSubchunk1Size:
		return invalid(ReasonBadSubchunk1Size, "Subchunk1Size", pcmSubchunk1Size, h.Subchunk1Size)
	case uint64(h.ByteRate) != byteRate:
		return invalid(ReasonBadByteRate, "ByteRate", byteRate, h.ByteRate)
	case uint64(h.BlockAlign) != blockAlign:
		return invalid(ReasonBadBlockAlign, "BlockAlign", blockAlign, h.BlockAlign)
	case h.Subchunk2ID != TagData:
		return invalid(ReasonNotDataChunk, "Subchunk2ID", tag(TagData), tag(h.Subchunk2ID))
	case int64(h.Subchunk2Size) != fileSize-HeaderSize:
		return invalid(ReasonBadSubchunk2Size, "Subchunk2Size", fileSize-HeaderSize, h.Subchunk2Size)
	case h.BitsPerSample != BitsPerSample:
		return invalid(ReasonUnsupportedBitDepth, "BitsPerSample", BitsPerSample, h.BitsPerSample)
	}

	return nil
}

// FillHeader builds a valid 16-bit PCM header for the given layout.
func FillHeader(channels, sampleRate, samplesPerChannel int) (Header, error) {
	var h Header

	switch {
	case channels < 1 || channels > math.MaxUint16/bytesPerSample:
		return h, fmt.Errorf("%w: channel count %d", ErrInvalidParameters, channels)
	case sampleRate < 0 || uint64(sampleRate) > math.MaxUint32:
		return h, fmt.Errorf("%w: sample rate %d", ErrInvalidParameters, sampleRate)
	case samplesPerChannel < 0 || uint64(samplesPerChannel) > math.MaxUint32:
		return h, fmt.Errorf("%w: %d samples per channel", ErrInvalidParameters, samplesPerChannel)
	}

	dataSize := uint64(channels) * bytesPerSample * uint64(samplesPerChannel)
	fileSize := HeaderSize + dataSize
	if fileSize-8 > math.MaxUint32 {
		return h, fmt.Errorf("%w: %d bytes of PCM data do not fit a WAV file",
			ErrInvalidParameters, dataSize)
	}

	byteRate := uint64(sampleRate) * uint64(channels) * bytesPerSample
	if byteRate > math.MaxUint32 {
		return h, fmt.Errorf("%w: byte rate %d overflows", ErrInvalidParameters, byteRate)
	}

	h = Header{
		ChunkID:       TagRIFF,
		ChunkSize:     uint32(fileSize - 8),
		Format:        TagWAVE,
		Subchunk1ID:   TagFmt,
		Subchunk1Size: pcmSubchunk1Size,
		AudioFormat:   FormatPCM,
		NumChannels:   uint16(channels),
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(byteRate),
		BlockAlign:    uint16(channels * bytesPerSample),
		BitsPerSample: BitsPerSample,
		Subchunk2ID:   TagData,
		Subchunk2Size: uint32(dataSize),
	}

	return h, nil
}

// FileSize is the total file size the header describes.
func (h Header) FileSize() int64 { return int64(h.ChunkSize) + 8 }

// Dump writes a human readable listing of every header field to w.
func (h Header) Dump(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)

	fmt.Fprintf(tw, "ChunkID:\t%q\n", h.ChunkID[:])
	fmt.Fprintf(tw, "ChunkSize:\t%d\n", h.ChunkSize)
	fmt.Fprintf(tw, "Format:\t%q\n", h.Format[:])
	fmt.Fprintf(tw, "Subchunk1ID:\t%q\n", h.Subchunk1ID[:])
	fmt.Fprintf(tw, "Subchunk1Size:\t%d\n", h.Subchunk1Size)
	fmt.Fprintf(tw, "AudioFormat:\t%d\n", h.AudioFormat)
	fmt.Fprintf(tw, "NumChannels:\t%d\n", h.NumChannels)
	fmt.Fprintf(tw, "SampleRate:\t%d\n", h.SampleRate)
	fmt.Fprintf(tw, "ByteRate:\t%d\n", h.ByteRate)
	fmt.Fprintf(tw, "BlockAlign:\t%d\n", h.BlockAlign)
	fmt.Fprintf(tw, "BitsPerSample:\t%d\n", h.BitsPerSample)
	fmt.Fprintf(tw, "Subchunk2ID:\t%q\n", h.Subchunk2ID[:])
	fmt.Fprintf(tw, "Subchunk2Size:\t%d\n", h.Subchunk2Size)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
