package rest

import (
	"github.com/panjuncai/Sola-sub000/internal/domain"
)

// SegmentResponse is the wire form of a cloze segment. Text is set for
// same, extra and missing segments; Parts only for mismatches.
type SegmentResponse struct {
	Type  string         `json:"type"`
	Text  string         `json:"text,omitempty"`
	Parts []PartResponse `json:"parts,omitempty"`
}

// PartResponse is the wire form of one character diff run.
type PartResponse struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// StatsResponse counts segments by kind.
type StatsResponse struct {
	Same     int `json:"same"`
	Extra    int `json:"extra"`
	Missing  int `json:"missing"`
	Mismatch int `json:"mismatch"`
}

// ResultResponse is the wire form of one comparison.
type ResultResponse struct {
	Correct  bool              `json:"correct"`
	Segments []SegmentResponse `json:"segments"`
	Stats    StatsResponse     `json:"stats"`
}

// BatchResponse is the wire form of a batch comparison.
type BatchResponse struct {
	Results      []ResultResponse `json:"results"`
	CorrectCount int              `json:"correctCount"`
	Total        int              `json:"total"`
}

// SentencesResponse lists split sentences.
type SentencesResponse struct {
	Sentences []string `json:"sentences"`
}

// NewResultResponse converts a comparison result to its wire form.
func NewResultResponse(res domain.ClozeResult) ResultResponse {
	segs := make([]SegmentResponse, 0, len(res.Segments))
	for _, s := range res.Segments {
		segs = append(segs, newSegmentResponse(s))
	}

	st := res.Stats()
	return ResultResponse{
		Correct:  res.Correct,
		Segments: segs,
		Stats: StatsResponse{
			Same:     st.Same,
			Extra:    st.Extra,
			Missing:  st.Missing,
			Mismatch: st.Mismatch,
		},
	}
}

func newSegmentResponse(s domain.ClozeSegment) SegmentResponse {
	switch seg := s.(type) {
	case domain.SameSegment:
		return SegmentResponse{Type: seg.Kind().String(), Text: seg.Text}
	case domain.ExtraSegment:
		return SegmentResponse{Type: seg.Kind().String(), Text: seg.Text}
	case domain.MissingSegment:
		return SegmentResponse{Type: seg.Kind().String(), Text: seg.Text}
	case domain.MismatchSegment:
		parts := make([]PartResponse, len(seg.Parts))
		for i, p := range seg.Parts {
			parts[i] = PartResponse{Kind: p.Kind.String(), Text: p.Text}
		}
		return SegmentResponse{Type: seg.Kind().String(), Parts: parts}
	default:
		return SegmentResponse{Type: s.Kind().String()}
	}
}
