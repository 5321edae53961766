package verify

import (
	"bytes"
	"encoding/binary"
)

// Classify decides whether the partition boundary at offset starts on a
// recognized structural marker.
//
// The decision order is fixed and the first match wins:
//  1. boundaries at or past the central directory are exempt
//  2. fewer than 4 readable bytes is a violation
//  3. the 4-byte magic at offset picks the outcome: local file header and
//     start-of-part frame are compliant, everything else is a violation with
//     a reason naming what was actually found.
//
// When withDetail is set, a compliant start-of-part verdict also carries the
// frame's 8-byte uncompressed-offset payload field if the buffer extends far
// enough to hold it.
//
// Classify is a pure function of its inputs; it retains no state between
// calls and never mutates data.
func Classify(data []byte, offset int64, cd CDLocation, withDetail bool) Verdict {
	if cd.Found && offset >= cd.Offset {
		return exempt("within central directory - alignment not required")
	}

	if offset+4 > int64(len(data)) {
		return violation("file too short (boundary beyond file end)")
	}

	magic := binary.LittleEndian.Uint32(data[offset : offset+4])

	switch magic {
	case lfhSig:
		return compliant(MarkerLocalFileHeader, "ZIP local file header")

	case skippableSig:
		// distinguish start-of-part frames from padding frames by the
		// type byte at frame offset 8.
		if offset+9 > int64(len(data)) {
			return violation("skippable frame but file too short to verify type byte")
		}

		switch typeByte := data[offset+8]; typeByte {
		case typeStartOfPart:
			v := compliant(MarkerStartOfPart, "start-of-part metadata frame")
			if withDetail {
				if uncompressedOffset, ok := readUint64(data, offset+9); ok {
					v.UncompressedOffset = uncompressedOffset
					v.HasDetail = true
				}
			}
			return v
		case typePadding:
			return violation("skippable frame is padding: type byte 0x%02x (expected 0x%02x)", typeByte, typeStartOfPart)
		default:
			return violation("skippable frame but wrong type byte: 0x%02x (expected 0x%02x)", typeByte, typeStartOfPart)
		}

	case zstdFrameSig:
		return violation("zstd frame (mid-frame, not at a frame boundary)")
	}

	if bytes.Equal(data[offset:offset+2], zipSigPrefix) {
		return violation("ZIP signature but not local file header: %x", data[offset:offset+4])
	}

	return violation("invalid magic: %x", data[offset:offset+4])
}
