package domain

// SegmentKind identifies the variant of a ClozeSegment.
type SegmentKind string

const (
	SegmentKindSame     SegmentKind = "same"
	SegmentKindExtra    SegmentKind = "extra"
	SegmentKindMissing  SegmentKind = "missing"
	SegmentKindMismatch SegmentKind = "mismatch"
)

func (k SegmentKind) String() string { return string(k) }

func (k SegmentKind) IsValid() bool {
	switch k {
	case SegmentKindSame, SegmentKindExtra, SegmentKindMissing, SegmentKindMismatch:
		return true
	}
	return false
}

// CharDiffKind classifies a run of characters inside a mismatched token.
type CharDiffKind string

const (
	CharDiffSame    CharDiffKind = "same"
	CharDiffExtra   CharDiffKind = "extra"
	CharDiffMissing CharDiffKind = "missing"
)

func (k CharDiffKind) String() string { return string(k) }

func (k CharDiffKind) IsValid() bool {
	switch k {
	case CharDiffSame, CharDiffExtra, CharDiffMissing:
		return true
	}
	return false
}

// CharDiffPart is a maximal run of characters sharing one classification.
type CharDiffPart struct {
	Kind CharDiffKind
	Text string
}

// ClozeSegment is one aligned token slot of a cloze comparison.
// The set of implementations is closed: SameSegment, ExtraSegment,
// MissingSegment and MismatchSegment.
type ClozeSegment interface {
	Kind() SegmentKind
	clozeSegment()
}

// SameSegment is a token that matched exactly.
type SameSegment struct {
	Text string
}

// ExtraSegment is a surplus token typed by the learner.
type ExtraSegment struct {
	Text string
}

// MissingSegment is an expected token absent from the attempt.
type MissingSegment struct {
	Text string
}

// MismatchSegment holds the character-level diff of two differing tokens.
type MismatchSegment struct {
	Parts []CharDiffPart
}

func (SameSegment) Kind() SegmentKind     { return SegmentKindSame }
func (ExtraSegment) Kind() SegmentKind    { return SegmentKindExtra }
func (MissingSegment) Kind() SegmentKind  { return SegmentKindMissing }
func (MismatchSegment) Kind() SegmentKind { return SegmentKindMismatch }

func (SameSegment) clozeSegment()     {}
func (ExtraSegment) clozeSegment()    {}
func (MissingSegment) clozeSegment()  {}
func (MismatchSegment) clozeSegment() {}

// Expected rebuilds the expected token from the same and missing parts.
func (m MismatchSegment) Expected() string {
	return joinParts(m.Parts, CharDiffMissing)
}

// Actual rebuilds the typed token from the same and extra parts.
func (m MismatchSegment) Actual() string {
	return joinParts(m.Parts, CharDiffExtra)
}

func joinParts(parts []CharDiffPart, side CharDiffKind) string {
	n := 0
	for _, p := range parts {
		if p.Kind == CharDiffSame || p.Kind == side {
			n += len(p.Text)
		}
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		if p.Kind == CharDiffSame || p.Kind == side {
			buf = append(buf, p.Text...)
		}
	}
	return string(buf)
}

// ClozeResult is the outcome of comparing an attempt against the expected
// sentence. It is computed per check and never mutated afterwards.
type ClozeResult struct {
	Correct  bool
	Segments []ClozeSegment
}

// ClozeStats counts segments per kind.
type ClozeStats struct {
	Same     int
	Extra    int
	Missing  int
	Mismatch int
}

// Stats returns per-kind segment counts.
func (r ClozeResult) Stats() ClozeStats {
	var s ClozeStats
	for _, seg := range r.Segments {
		switch seg.Kind() {
		case SegmentKindSame:
			s.Same++
		case SegmentKindExtra:
			s.Extra++
		case SegmentKindMissing:
			s.Missing++
		case SegmentKindMismatch:
			s.Mismatch++
		}
	}
	return s
}
