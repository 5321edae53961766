package verify

import "fmt"

// Status is the outcome category of a single boundary check.
type Status int

const (
	// StatusCompliant means the boundary starts on a recognized structural
	// marker.
	StatusCompliant Status = iota
	// StatusExempt means the boundary falls inside the central directory
	// where the alignment rule does not apply.
	StatusExempt
	// StatusViolation means the boundary does not start on a recognized
	// structural marker.
	StatusViolation
)

// MarkerKind identifies which structural marker satisfied a compliant
// boundary.
type MarkerKind int

const (
	// MarkerNone is used for exempt and violating boundaries.
	MarkerNone MarkerKind = iota
	// MarkerLocalFileHeader means the boundary starts on a ZIP local file
	// header.
	MarkerLocalFileHeader
	// MarkerStartOfPart means the boundary starts on a start-of-part
	// skippable frame.
	MarkerStartOfPart
)

// Verdict is the classification of one partition boundary.
//
// Exactly one Status applies; Marker is meaningful only for
// StatusCompliant. UncompressedOffset is the decoded payload field of a
// start-of-part frame and is valid only if HasDetail is true.
type Verdict struct {
	Status Status
	Marker MarkerKind
	// Reason is a human-readable explanation, including the literal
	// offending bytes for violations where they matter.
	Reason string

	UncompressedOffset uint64
	HasDetail          bool
}

// OK reports whether the boundary passes (compliant or exempt).
func (v Verdict) OK() bool {
	return v.Status != StatusViolation
}

func compliant(marker MarkerKind, reason string) Verdict {
	return Verdict{Status: StatusCompliant, Marker: marker, Reason: reason}
}

func exempt(reason string) Verdict {
	return Verdict{Status: StatusExempt, Reason: reason}
}

func violation(format string, args ...any) Verdict {
	return Verdict{Status: StatusViolation, Reason: fmt.Sprintf(format, args...)}
}
