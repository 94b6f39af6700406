// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/wavfx/internal/audiotest"
)

func TestReadHeader_Fields(t *testing.T) {
	t.Parallel()

	raw := audiotest.CanonicalHeader(44100, 2, 6).Bytes()

	h, err := ReadHeader(raw)
	require.NoError(t, err)

	assert.Equal(t, TagRIFF, h.ChunkID)
	assert.Equal(t, uint32(36+12), h.ChunkSize)
	assert.Equal(t, TagWAVE, h.Format)
	assert.Equal(t, TagFmt, h.Subchunk1ID)
	assert.Equal(t, uint32(16), h.Subchunk1Size)
	assert.Equal(t, uint16(1), h.AudioFormat)
	assert.Equal(t, uint16(2), h.NumChannels)
	assert.Equal(t, uint32(44100), h.SampleRate)
	assert.Equal(t, uint32(176400), h.ByteRate)
	assert.Equal(t, uint16(4), h.BlockAlign)
	assert.Equal(t, uint16(16), h.BitsPerSample)
	assert.Equal(t, TagData, h.Subchunk2ID)
	assert.Equal(t, uint32(12), h.Subchunk2Size)
}

func TestReadHeader_LittleEndian(t *testing.T) {
	t.Parallel()

	raw := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(raw[24:28], 0x0102_0304)
	binary.LittleEndian.PutUint16(raw[22:24], 0x0A0B)

	h, err := ReadHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x0102_0304), h.SampleRate)
	assert.Equal(t, uint16(0x0A0B), h.NumChannels)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, raw[24:28])
}

func TestReadHeader_OnlyFirst44Bytes(t *testing.T) {
	t.Parallel()

	raw := audiotest.WAVBytes(8000, 1, []int16{1, 2, 3})

	h, err := ReadHeader(raw)
	require.NoError(t, err)

	head, err := ReadHeader(raw[:HeaderSize])
	require.NoError(t, err)
	assert.Equal(t, head, h)
}

func TestReadHeader_Malformed(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 4, 12, 36, 43} {
		_, err := ReadHeader(make([]byte, n))
		assert.ErrorIs(t, err, ErrMalformedHeader, "length %d", n)
	}
}

func TestHeader_BytesRoundTrip(t *testing.T) {
	t.Parallel()

	raw := audiotest.CanonicalHeader(22050, 3, 300).Bytes()

	h, err := ReadHeader(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, h.Bytes())

	marshaled, err := h.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, raw, marshaled)

	var back Header
	require.NoError(t, back.UnmarshalBinary(marshaled))
	assert.Equal(t, h, back)

	assert.ErrorIs(t, back.UnmarshalBinary(raw[:10]), ErrMalformedHeader)
}

func TestHeader_Validate(t *testing.T) {
	t.Parallel()

	const samples = 8
	fileSize := int64(HeaderSize + samples*2)

	tests := []struct {
		name     string
		mutate   func(h *audiotest.Header)
		fileSize int64
		want     Reason
	}{
		{"chunk id", func(h *audiotest.Header) { h.ChunkID = "RIFX" }, fileSize, ReasonNotRiff},
		{"chunk size", func(h *audiotest.Header) { h.ChunkSize++ }, fileSize, ReasonBadChunkSize},
		{"file size", func(h *audiotest.Header) {}, fileSize + 2, ReasonBadChunkSize},
		{"format", func(h *audiotest.Header) { h.Format = "AVI " }, fileSize, ReasonNotWave},
		{"fmt id", func(h *audiotest.Header) { h.Subchunk1ID = "fmt\x00" }, fileSize, ReasonNotFmtChunk},
		{"audio format", func(h *audiotest.Header) { h.AudioFormat = 2 }, fileSize, ReasonUnsupportedAudioFormat},
		{"float format", func(h *audiotest.Header) { h.AudioFormat = 3 }, fileSize, ReasonUnsupportedAudioFormat},
		{"subchunk1 size", func(h *audiotest.Header) { h.Subchunk1Size = 18 }, fileSize, ReasonBadSubchunk1Size},
		{"byte rate off by one", func(h *audiotest.Header) { h.ByteRate++ }, fileSize, ReasonBadByteRate},
		{"block align", func(h *audiotest.Header) { h.BlockAlign = 2 }, fileSize, ReasonBadBlockAlign},
		{"data id", func(h *audiotest.Header) { h.Subchunk2ID = "LIST" }, fileSize, ReasonNotDataChunk},
		{"subchunk2 size", func(h *audiotest.Header) { h.Subchunk2Size -= 2 }, fileSize, ReasonBadSubchunk2Size},
		{
			// byte rate and block align are kept consistent so the
			// bit depth check is the first to fail
			"8-bit samples",
			func(h *audiotest.Header) {
				h.BitsPerSample = 8
				h.ByteRate = 8000 * 2
				h.BlockAlign = 2
			},
			fileSize,
			ReasonUnsupportedBitDepth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fixture := audiotest.CanonicalHeader(8000, 2, samples)
			tt.mutate(&fixture)

			h, err := ReadHeader(fixture.Bytes())
			require.NoError(t, err)

			err = h.Validate(tt.fileSize)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrHeaderValidation)
			assert.ErrorIs(t, err, &ValidationError{Reason: tt.want})

			reason, ok := ReasonOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, reason)
		})
	}
}

func TestHeader_ValidateOrder(t *testing.T) {
	t.Parallel()

	// Every field is wrong; checks must report in a fixed order.
	fixture := audiotest.CanonicalHeader(8000, 2, 8)
	fixture.AudioFormat = 2
	fixture.ByteRate = 1
	fixture.BitsPerSample = 24
	fixture.Subchunk2ID = "junk"

	h, err := ReadHeader(fixture.Bytes())
	require.NoError(t, err)

	reason, _ := ReasonOf(h.Validate(HeaderSize + 16))
	assert.Equal(t, ReasonUnsupportedAudioFormat, reason)

	h.AudioFormat = FormatPCM
	reason, _ = ReasonOf(h.Validate(HeaderSize + 16))
	assert.Equal(t, ReasonBadByteRate, reason)

	h.ByteRate = 8000 * 2 * 24 / 8
	reason, _ = ReasonOf(h.Validate(HeaderSize + 16))
	assert.Equal(t, ReasonBadBlockAlign, reason)

	h.BlockAlign = 6
	reason, _ = ReasonOf(h.Validate(HeaderSize + 16))
	assert.Equal(t, ReasonNotDataChunk, reason)

	h.Subchunk2ID = TagData
	reason, _ = ReasonOf(h.Validate(HeaderSize + 16))
	assert.Equal(t, ReasonUnsupportedBitDepth, reason)
}

func TestHeader_ValidateNoOverflow(t *testing.T) {
	t.Parallel()

	// 32-bit arithmetic would wrap this product to a small value.
	h, err := FillHeader(2, 8000, 4)
	require.NoError(t, err)

	h.SampleRate = 1 << 30
	h.ByteRate = uint32((uint64(1<<30) * 2 * 16 / 8) & 0xFFFF_FFFF)

	reason, ok := ReasonOf(h.Validate(h.FileSize()))
	require.True(t, ok)
	assert.Equal(t, ReasonBadByteRate, reason)
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	fixture := audiotest.CanonicalHeader(8000, 1, 4)
	fixture.ByteRate = 16001

	h, err := ReadHeader(fixture.Bytes())
	require.NoError(t, err)

	err = h.Validate(HeaderSize + 8)
	require.Error(t, err)
	assert.Equal(t, "invalid WAV header: BadByteRate: ByteRate is 16001, want 16000", err.Error())
	assert.NotErrorIs(t, err, &ValidationError{Reason: ReasonBadBlockAlign})
	assert.NotErrorIs(t, err, ErrMalformedHeader)
}

func TestFillHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		channels          int
		sampleRate        int
		samplesPerChannel int
	}{
		{"mono", 1, 8000, 100},
		{"stereo", 2, 44100, 44100},
		{"six channels", 6, 48000, 7},
		{"empty", 2, 16000, 0},
		{"widest block align", 32767, 8000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, err := FillHeader(tt.channels, tt.sampleRate, tt.samplesPerChannel)
			require.NoError(t, err)

			fileSize := int64(HeaderSize + tt.channels*2*tt.samplesPerChannel)
			assert.Equal(t, fileSize, h.FileSize())
			assert.Equal(t, uint32(fileSize-8), h.ChunkSize)
			assert.Equal(t, uint32(fileSize-HeaderSize), h.Subchunk2Size)
			assert.Equal(t, uint32(tt.sampleRate*tt.channels*2), h.ByteRate)
			assert.Equal(t, uint16(tt.channels*2), h.BlockAlign)
			require.NoError(t, h.Validate(fileSize))

			want := audiotest.CanonicalHeader(tt.sampleRate, tt.channels, tt.channels*tt.samplesPerChannel).Bytes()
			assert.Equal(t, want, h.Bytes())
		})
	}
}

func TestFillHeader_InvalidParameters(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                                    string
		channels, sampleRate, samplesPerChannel int
	}{
		{"no channels", 0, 8000, 10},
		{"negative channels", -1, 8000, 10},
		{"block align overflow", 40000, 8000, 10},
		{"one channel past widest block align", 32768, 8000, 0},
		{"negative sample rate", 1, -1, 10},
		{"negative samples", 1, 8000, -1},
		{"data too large", 4, 8000, 1 << 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := FillHeader(tt.channels, tt.sampleRate, tt.samplesPerChannel)
			assert.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestHeader_Dump(t *testing.T) {
	t.Parallel()

	h, err := FillHeader(2, 44100, 10)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, h.Dump(&out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, `ChunkID:       "RIFF"`, lines[0])
	assert.Equal(t, "NumChannels:   2", lines[6])
	assert.Equal(t, "SampleRate:    44100", lines[7])
	assert.Equal(t, "Subchunk2Size: 40", lines[12])
}

func BenchmarkReadHeader(b *testing.B) {
	raw := audiotest.CanonicalHeader(44100, 2, 100).Bytes()

	b.ReportAllocs()

	for b.Loop() {
		h, _ := ReadHeader(raw)
		_ = h.Validate(HeaderSize + 200)
	}
}
