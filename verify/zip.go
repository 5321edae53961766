package verify

import "encoding/binary"

// Signatures and framing constants of the BURST container format.
//
// A BURST archive is a ZIP (or ZIP64) file whose entry payloads are zstd
// frames, with skippable frames carrying partition metadata so that every
// PartSize boundary starts on a recognizable structure.
const (
	lfhSig       = 0x04034b50
	cdfhSig      = 0x02014b50
	eocdSig      = 0x06054b50
	eocd64Sig    = 0x06064b50
	locator64Sig = 0x07064b50

	// zstdFrameSig is the magic of a regular zstd compressed frame.
	zstdFrameSig = 0xfd2fb528
	// skippableSig is the magic of the BURST skippable metadata frame.
	skippableSig = 0x184d2a5b

	// typeStartOfPart and typePadding are the frame-type bytes found at
	// offset 8 of a BURST skippable frame.
	typeStartOfPart = 0x01
	typePadding     = 0x00
)

// PartSize is the fixed partition size; every multiple of it within the
// archive must coincide with a local file header or a start-of-part frame.
const PartSize = 8 * 1024 * 1024

// maxCommentSize bounds the backward search for the end of central directory
// record; the ZIP comment field is at most 64 KiB so the EOCD signature can
// never sit farther than this from end of file.
const maxCommentSize = 64 * 1024

var (
	eocdSigBytes      = putUint32(eocdSig)
	locator64SigBytes = putUint32(locator64Sig)

	zipSigPrefix = []byte{0x50, 0x4b}
)

func putUint32(v uint32) (b []byte) {
	b = make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// readUint32 decodes the little-endian uint32 at data[offset:offset+4].
// The boolean is false if the range does not fit within data.
func readUint32(data []byte, offset int64) (uint32, bool) {
	if offset < 0 || offset+4 > int64(len(data)) {
		return 0, false
	}
	return binary.LittleEndian.Uint32(data[offset : offset+4]), true
}

// readUint64 decodes the little-endian uint64 at data[offset:offset+8].
// The boolean is false if the range does not fit within data.
func readUint64(data []byte, offset int64) (uint64, bool) {
	if offset < 0 || offset+8 > int64(len(data)) {
		return 0, false
	}
	return binary.LittleEndian.Uint64(data[offset : offset+8]), true
}
