package model

import "fmt"

// Certainty represents how much trust we place in a single fact.
// The zero value CertaintyUnknown means no explicit confidence was
// recorded and sorts below every explicit level.
type Certainty int

const (
	CertaintyUnknown Certainty = iota // no explicit confidence
	CertaintyPossible
	CertaintyLikely
	CertaintyConfident
	CertaintyCertain
)

// String returns the lowercase token for an explicit certainty level
func (c Certainty) String() string {
	switch c {
	case CertaintyPossible:
		return "possible"
	case CertaintyLikely:
		return "likely"
	case CertaintyConfident:
		return "confident"
	case CertaintyCertain:
		return "certain"
	default:
		return "unknown"
	}
}

// ParseCertainty parses one of the four lowercase certainty tokens
func ParseCertainty(s string) (Certainty, error) {
	switch s {
	case "possible":
		return CertaintyPossible, nil
	case "likely":
		return CertaintyLikely, nil
	case "confident":
		return CertaintyConfident, nil
	case "certain":
		return CertaintyCertain, nil
	default:
		return CertaintyUnknown, fmt.Errorf("%w: %q", ErrInvalidCertainty, s)
	}
}

// MinCertainty returns the lower of two certainty levels
func MinCertainty(a, b Certainty) Certainty {
	if a < b {
		return a
	}
	return b
}
