package verify

import "bytes"

// CDLocation is the result of searching for the start of the central
// directory. Found is false if no end-of-central-directory record was
// located, in which case Offset is meaningless and the central-directory
// exemption never applies.
type CDLocation struct {
	Offset int64
	Found  bool
}

// LocateCentralDirectory searches data for the ZIP end-of-central-directory
// record and returns the offset at which the central directory begins.
//
// The search runs backwards over the final 64 KiB of data (the maximum
// displacement a trailing comment can cause) so that the last EOCD signature
// wins even if the same 4 bytes coincidentally appear inside entry data. If a
// ZIP64 locator record immediately precedes the EOCD, the offset is decoded
// from the ZIP64 end-of-central-directory record it points at instead of from
// the classic 32-bit field.
//
// Any decode that would run past either end of data reports not found.
func LocateCentralDirectory(data []byte) CDLocation {
	searchStart := max(0, int64(len(data))-maxCommentSize)

	i := bytes.LastIndex(data[searchStart:], eocdSigBytes)
	if i == -1 {
		return CDLocation{}
	}
	eocdPos := searchStart + int64(i)

	// a ZIP64 locator is a fixed 20-byte record sitting directly before the
	// classic EOCD: signature (4), disk number (4), ZIP64 EOCD offset (8),
	// total disks (4).
	if eocdPos >= 20 && bytes.Equal(data[eocdPos-20:eocdPos-16], locator64SigBytes) {
		eocd64Pos, ok := readUint64(data, eocdPos-12)
		if !ok {
			return CDLocation{}
		}

		// the 8-byte central directory offset lives at bytes [48, 56) of
		// the ZIP64 EOCD record.
		cdOffset, ok := readUint64(data, int64(eocd64Pos)+48)
		if !ok {
			return CDLocation{}
		}

		return CDLocation{Offset: int64(cdOffset), Found: true}
	}

	// classic EOCD: the 4-byte central directory offset lives at bytes
	// [16, 20) of the record.
	cdOffset, ok := readUint32(data, eocdPos+16)
	if !ok {
		return CDLocation{}
	}

	return CDLocation{Offset: int64(cdOffset), Found: true}
}
