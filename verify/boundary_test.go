package verify

import (
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
)

// writeSkippableFrame writes a BURST skippable frame header at pos: magic,
// 4-byte payload size, type byte, then the 8-byte uncompressed offset.
func writeSkippableFrame(data []byte, pos int64, typeByte byte, uncompressedOffset uint64) {
	binary.LittleEndian.PutUint32(data[pos:], skippableSig)
	binary.LittleEndian.PutUint32(data[pos+4:], 9)
	data[pos+8] = typeByte
	binary.LittleEndian.PutUint64(data[pos+9:], uncompressedOffset)
}

func TestClassify_LocalFileHeader(t *testing.T) {
	data := make([]byte, 32)
	binary.LittleEndian.PutUint32(data[0:], lfhSig)

	v := Classify(data, 0, CDLocation{}, false)
	assert.Equal(t, StatusCompliant, v.Status)
	assert.Equal(t, MarkerLocalFileHeader, v.Marker)
}

func TestClassify_StartOfPart(t *testing.T) {
	data := make([]byte, 32)
	writeSkippableFrame(data, 0, typeStartOfPart, 0xdeadbeef)

	t.Run("without detail", func(t *testing.T) {
		v := Classify(data, 0, CDLocation{}, false)
		assert.Equal(t, StatusCompliant, v.Status)
		assert.Equal(t, MarkerStartOfPart, v.Marker)
		assert.False(t, v.HasDetail)
	})

	t.Run("with detail", func(t *testing.T) {
		v := Classify(data, 0, CDLocation{}, true)
		assert.Equal(t, StatusCompliant, v.Status)
		assert.Equal(t, MarkerStartOfPart, v.Marker)
		assert.True(t, v.HasDetail)
		assert.Equal(t, uint64(0xdeadbeef), v.UncompressedOffset)
	})

	t.Run("detail requested but payload truncated", func(t *testing.T) {
		// frame header is intact but the 8-byte payload field is cut off;
		// the boundary still complies, there is just nothing to decode.
		v := Classify(data[:12], 0, CDLocation{}, true)
		assert.Equal(t, StatusCompliant, v.Status)
		assert.False(t, v.HasDetail)
	})
}

func TestClassify_SkippableFrameViolations(t *testing.T) {
	t.Run("wrong type byte", func(t *testing.T) {
		data := make([]byte, 32)
		writeSkippableFrame(data, 0, 0x02, 0)

		v := Classify(data, 0, CDLocation{}, false)
		assert.Equal(t, StatusViolation, v.Status)
		assert.Contains(t, v.Reason, "0x02")
		assert.Contains(t, v.Reason, "0x01")
	})

	t.Run("padding frame", func(t *testing.T) {
		data := make([]byte, 32)
		writeSkippableFrame(data, 0, typePadding, 0)

		v := Classify(data, 0, CDLocation{}, false)
		assert.Equal(t, StatusViolation, v.Status)
		assert.Contains(t, v.Reason, "padding")
	})

	t.Run("too short to verify type byte", func(t *testing.T) {
		data := make([]byte, 8)
		binary.LittleEndian.PutUint32(data[0:], skippableSig)

		v := Classify(data, 0, CDLocation{}, false)
		assert.Equal(t, StatusViolation, v.Status)
		assert.Contains(t, v.Reason, "too short")
	})
}

func TestClassify_ZstdFrame(t *testing.T) {
	// a genuine zstd frame from the encoder, not hand-typed magic bytes.
	enc, err := zstd.NewWriter(nil)
	assert.NoErrorf(t, err, "zstd.NewWriter(nil) error = %v", err)

	frame := enc.EncodeAll([]byte("compressed payload that a boundary may land inside"), nil)
	assert.NoErrorf(t, enc.Close(), "Close() error = %v", err)

	v := Classify(frame, 0, CDLocation{}, false)
	assert.Equal(t, StatusViolation, v.Status)
	assert.Contains(t, v.Reason, "zstd frame")
}

func TestClassify_OtherMagics(t *testing.T) {
	tests := []struct {
		name     string
		magic    uint32
		contains string
	}{
		{
			name:     "central directory file header",
			magic:    cdfhSig,
			contains: "not local file header",
		},
		{
			name:     "end of central directory",
			magic:    eocdSig,
			contains: "not local file header",
		},
		{
			name:     "unrecognized magic",
			magic:    0xffffffff,
			contains: "invalid magic: ffffffff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, 16)
			binary.LittleEndian.PutUint32(data[0:], tt.magic)

			v := Classify(data, 0, CDLocation{}, false)
			assert.Equal(t, StatusViolation, v.Status)
			assert.Contains(t, v.Reason, tt.contains)
		})
	}
}

func TestClassify_CentralDirectoryExemption(t *testing.T) {
	// garbage bytes beyond the central directory start must still pass.
	data := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, 0x00, 0x11}

	v := Classify(data, 4, CDLocation{Offset: 4, Found: true}, false)
	assert.Equal(t, StatusExempt, v.Status)

	// same bytes without a known central directory are a violation.
	v = Classify(data, 4, CDLocation{}, false)
	assert.Equal(t, StatusViolation, v.Status)
}

func TestClassify_Truncated(t *testing.T) {
	data := make([]byte, 10)

	v := Classify(data, 8, CDLocation{}, false)
	assert.Equal(t, StatusViolation, v.Status)
	assert.Contains(t, v.Reason, "too short")
}
