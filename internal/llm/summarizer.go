package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/store"
)

// Summarizer derives a Summary fact from a store's Description
type Summarizer struct {
	provider Provider
}

// NewSummarizer creates a summarizer, or an error if the configured
// provider cannot be constructed
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return &Summarizer{provider: provider}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// SummaryFact generates a Summary fact from the store's Description.
// Returns (nil, nil) when there is nothing to do: generation disabled,
// no Description, or a Summary already present.
func (s *Summarizer) SummaryFact(ctx context.Context, st *store.Store) (*model.Fact, error) {
	if !s.IsEnabled() {
		return nil, nil
	}
	if st.Has("Summary") {
		return nil, nil
	}
	description, ok := st.Get("Description")
	if !ok {
		return nil, nil
	}
	text, _ := model.DatumValue(description.Datum)
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		ProjectName: st.Name(),
		Description: text,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize description: %w", err)
	}
	if resp.Summary == "" {
		return nil, nil
	}

	return &model.Fact{
		Datum:     model.Summary(resp.Summary),
		Certainty: model.CertaintyPossible,
		Origin:    model.DerivedOrigin("llm:" + s.provider.Name()),
	}, nil
}
