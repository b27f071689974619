package model

import (
	"errors"
	"fmt"
)

// ErrInvalidCertainty is returned when a certainty token cannot be parsed
var ErrInvalidCertainty = errors.New("invalid certainty")

// OriginKind classifies where a fact came from
type OriginKind string

const (
	OriginPath    OriginKind = "path"    // read from a local file
	OriginURL     OriginKind = "url"     // read from a remote source
	OriginDerived OriginKind = "derived" // produced by an extrapolation rule
	OriginOther   OriginKind = "other"   // anything else (environment, ...)
)

// Origin describes where a fact came from. It is informational only
// and never participates in certainty comparisons.
type Origin struct {
	Kind  OriginKind `json:"kind" yaml:"kind"`
	Value string     `json:"value,omitempty" yaml:"value,omitempty"`
}

func (o Origin) String() string {
	if o.Value == "" {
		return string(o.Kind)
	}
	return o.Value
}

// PathOrigin returns an Origin for a local file path
func PathOrigin(path string) Origin {
	return Origin{Kind: OriginPath, Value: path}
}

// URLOrigin returns an Origin for a remote source
func URLOrigin(url string) Origin {
	return Origin{Kind: OriginURL, Value: url}
}

// DerivedOrigin returns an Origin for an extrapolated fact
func DerivedOrigin(from string) Origin {
	return Origin{Kind: OriginDerived, Value: from}
}

// Fact is a single datum together with its confidence and provenance
type Fact struct {
	Datum     Datum
	Certainty Certainty
	Origin    Origin
}

// Field returns the canonical field name of the fact's datum
func (f Fact) Field() string {
	return f.Datum.Field()
}

func (f Fact) String() string {
	return fmt.Sprintf("%s: %s (%s)", f.Field(), f.Datum, f.Certainty)
}
