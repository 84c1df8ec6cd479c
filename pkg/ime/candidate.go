package ime

import "sort"

// DefaultConfidence is assigned to candidates whose source reports no
// score of its own.
const DefaultConfidence = 0.5

// Candidate is one suggestion for the current composing text.
type Candidate struct {
	Text       string
	Annotation string // optional gloss shown beside the text, "" if none
	Confidence float64
}

// NewCandidate builds a candidate with the confidence clamped to [0, 1].
func NewCandidate(text, annotation string, confidence float64) Candidate {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return Candidate{Text: text, Annotation: annotation, Confidence: confidence}
}

// Equal reports whether two candidates are the same suggestion.
// Confidence is a ranking hint, not part of identity, so two candidates
// with equal text and annotation compare equal at any score.
func (c Candidate) Equal(other Candidate) bool {
	return c.Text == other.Text && c.Annotation == other.Annotation
}

// SortCandidates orders a candidate list by descending confidence,
// breaking ties by text so the order is deterministic.
func SortCandidates(list []Candidate) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Confidence != list[j].Confidence {
			return list[i].Confidence > list[j].Confidence
		}
		return list[i].Text < list[j].Text
	})
}
