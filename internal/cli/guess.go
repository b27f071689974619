package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkorsak/provenir/internal/extrapolate"
	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/pipeline"
)

var (
	netAccess      bool
	trustPackage   bool
	iterationLimit int
	httpTimeout    time.Duration
	outputFormat   string
	noCache        bool
	cacheDir       string
	llmProvider    string
	llmModel       string
)

// guessCmd represents the guess command
var guessCmd = &cobra.Command{
	Use:   "guess [dir]",
	Short: "Guess upstream metadata for a project directory",
	Long: `Guess inspects a project directory, collects candidate facts from its
manifests and VCS configuration, and extrapolates missing fields from
the ones that were found.

Network-backed rules (homepage consultation, forge detection for
unknown hosts) only run with --net.

Example:
  provenir guess .
  provenir guess ~/src/someproject --net --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGuess,
}

func init() {
	rootCmd.AddCommand(guessCmd)

	guessCmd.Flags().BoolVar(&netAccess, "net", false, "allow network access for extrapolation rules")
	guessCmd.Flags().BoolVar(&trustPackage, "trust", false, "trust package contents as authoritative")
	guessCmd.Flags().IntVar(&iterationLimit, "limit", extrapolate.DefaultIterationLimit, "max extrapolation passes")
	guessCmd.Flags().DurationVar(&httpTimeout, "timeout", 5*time.Second, "per-call HTTP timeout")
	guessCmd.Flags().StringVar(&outputFormat, "format", "yaml", "output format (yaml or json)")
	guessCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable response caching")
	guessCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist fetched responses under this directory across runs")
	guessCmd.Flags().StringVar(&llmProvider, "llm-provider", "", "LLM provider for summary generation (openai, ollama)")
	guessCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
}

func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = httpTimeout
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	cfg.Extrapolate.NetAccess = netAccess
	cfg.Extrapolate.IterationLimit = iterationLimit
	cfg.Extrapolate.TrustPackage = trustPackage
	cfg.Output.Verbose = verbose
	cfg.Output.Format = outputFormat

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}
	return cfg, nil
}

func runGuess(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Guessing: %s\n", dir)
		fmt.Fprintf(os.Stderr, "Network access: %v\n", netAccess)
	}

	p := pipeline.NewPipeline(cfg)
	st, err := p.Guess(context.Background(), dir)
	if err != nil {
		var limitErr *extrapolate.LimitExceededError
		if errors.As(err, &limitErr) {
			return fmt.Errorf("rule set failed to converge within %d passes", limitErr.Limit)
		}
		return err
	}

	if cfg.Output.Format == "json" {
		return pipeline.RenderJSON(os.Stdout, st)
	}
	return pipeline.RenderYAML(os.Stdout, st)
}
