package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/mkorsak/provenir/internal/cache"
	"github.com/mkorsak/provenir/internal/extrapolate"
	"github.com/mkorsak/provenir/internal/homepage"
	"github.com/mkorsak/provenir/internal/llm"
	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/providers"
	"github.com/mkorsak/provenir/internal/store"
)

// Pipeline runs the complete extraction for one project directory:
// providers populate a fresh store, the engine extrapolates it to a
// fixpoint, and the finalized store is handed back for rendering.
type Pipeline struct {
	providers  []providers.Provider
	engine     *extrapolate.Engine
	summarizer *llm.Summarizer // nil if disabled
	cache      cache.Cache     // nil if disabled
	config     *model.Config
}

// newResponseCache builds the consultation cache: memory only by
// default, layered over a disk directory when one is configured
func newResponseCache(cfg *model.Config) cache.Cache {
	if !cfg.Cache.Enabled {
		return nil
	}
	if cfg.Cache.Dir != "" {
		return cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}
	return cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.TTL)
}

// NewPipeline creates a pipeline from configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	responseCache := newResponseCache(cfg)
	consultant := homepage.NewConsultant(cfg, responseCache)

	logf := func(string, ...interface{}) {}
	if cfg.Output.Verbose {
		logf = func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	engine := extrapolate.NewEngine(
		extrapolate.DefaultRules(consultant),
		extrapolate.WithNetAccess(cfg.Extrapolate.NetAccess),
		extrapolate.WithIterationLimit(cfg.Extrapolate.IterationLimit),
		extrapolate.WithLogf(logf),
	)

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		providers:  providers.All(),
		engine:     engine,
		summarizer: summarizer,
		cache:      responseCache,
		config:     cfg,
	}
}

// Guess extracts and extrapolates metadata for one project directory
func (p *Pipeline) Guess(ctx context.Context, dir string) (*store.Store, error) {
	st := store.New()

	// 1. Collect initial facts. A failing provider is warned about and
	// skipped; it must not abort fusion of the remaining facts.
	for _, provider := range p.providers {
		facts, err := provider.Guess(dir, p.config.Extrapolate.TrustPackage)
		if err != nil {
			if p.config.Output.Verbose {
				fmt.Fprintf(os.Stderr, "Warning: provider %s: %v\n", provider.Name, err)
			}
			continue
		}
		st.Update(facts)
	}

	// 2. Extrapolate to a fixpoint
	if err := p.engine.Run(ctx, st); err != nil {
		return nil, fmt.Errorf("extrapolate: %w", err)
	}

	if p.config.Output.Verbose {
		if sr, ok := p.cache.(cache.StatsReporter); ok {
			hits, misses := sr.Stats()
			fmt.Fprintf(os.Stderr, "Response cache: %d hits, %d misses\n", hits, misses)
		}
	}

	// 3. Optional LLM summary (after extrapolation, never affects it)
	if p.summarizer.IsEnabled() {
		fact, err := p.summarizer.SummaryFact(ctx, st)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if fact != nil {
			st.InsertOrUpgrade(*fact)
		}
	}

	return st, nil
}
