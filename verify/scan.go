package verify

// ScanOptions customises how boundaries are scanned.
type ScanOptions struct {
	// Detail enables decoding the uncompressed-offset payload field of
	// start-of-part frames into each verdict.
	Detail bool
}

// WithDetail enables payload detail decoding on compliant start-of-part
// verdicts.
func WithDetail(opts *ScanOptions) {
	opts.Detail = true
}

// BoundaryResult pairs a boundary with its verdict. Index is 1-based; Offset
// is always Index * PartSize.
type BoundaryResult struct {
	Index   int
	Offset  int64
	Verdict Verdict
}

// Report is the aggregate outcome of scanning every partition boundary of an
// archive.
type Report struct {
	// FileSize is the length of the scanned buffer.
	FileSize int64
	// CD is where the central directory was found, if it was.
	CD CDLocation
	// Boundaries holds one result per boundary in ascending index order.
	Boundaries []BoundaryResult
	// Passed counts compliant and exempt boundaries.
	Passed int
	// Violations counts failing boundaries; zero means the archive honors
	// the alignment guarantee.
	Violations int
}

// Scan checks every PartSize boundary of data and returns the full report.
//
// The central directory is located once up front; a missing
// end-of-central-directory record is not fatal, it only disables the
// central-directory exemption. The scan never stops early on a violation so
// the report always covers every boundary.
func Scan(data []byte, optFns ...func(*ScanOptions)) Report {
	opts := &ScanOptions{}
	for _, fn := range optFns {
		fn(opts)
	}

	fileSize := int64(len(data))
	r := Report{
		FileSize: fileSize,
		CD:       LocateCentralDirectory(data),
	}

	numBoundaries := fileSize / PartSize
	if numBoundaries == 0 {
		return r
	}

	r.Boundaries = make([]BoundaryResult, 0, numBoundaries)
	for i := int64(1); i <= numBoundaries; i++ {
		offset := i * PartSize

		// a file whose size is an exact multiple of PartSize has no
		// boundary at its very end.
		if offset >= fileSize {
			break
		}

		v := Classify(data, offset, r.CD, opts.Detail)
		if v.OK() {
			r.Passed++
		} else {
			r.Violations++
		}

		r.Boundaries = append(r.Boundaries, BoundaryResult{
			Index:   int(i),
			Offset:  offset,
			Verdict: v,
		})
	}

	return r
}
