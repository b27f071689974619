package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkorsak/provenir/internal/extrapolate"
	"github.com/mkorsak/provenir/internal/pipeline"
	"github.com/mkorsak/provenir/internal/worker"
)

var (
	batchWorkers int
	batchFile    string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [dirs...]",
	Short: "Guess metadata for many project directories concurrently",
	Long: `Batch runs extraction over several project directories. Each project
gets its own independent store and engine run; results are printed one
document per project.

Directories can be given as arguments or read from a file with one
path per line (blank lines and # comments are skipped).

Example:
  provenir batch ~/src/a ~/src/b
  provenir batch --file projects.txt --workers 8`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "number of concurrent projects")
	batchCmd.Flags().StringVar(&batchFile, "file", "", "file with one project directory per line")
	batchCmd.Flags().BoolVar(&netAccess, "net", false, "allow network access for extrapolation rules")
	batchCmd.Flags().StringVar(&outputFormat, "format", "yaml", "output format (yaml or json)")
	batchCmd.Flags().IntVar(&iterationLimit, "limit", extrapolate.DefaultIterationLimit, "max extrapolation passes")
	batchCmd.Flags().DurationVar(&httpTimeout, "timeout", 5*time.Second, "per-call HTTP timeout")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "persist fetched responses under this directory across runs")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dirs := args
	if batchFile != "" {
		fromFile, err := worker.ReadDirsFromFile(batchFile)
		if err != nil {
			return err
		}
		dirs = append(dirs, fromFile...)
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no project directories given")
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(pipeline.NewPipeline(cfg), batchWorkers)
	results := processor.ProcessDirs(context.Background(), dirs)

	failures := 0
	for _, result := range results {
		if result.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", result.Dir, result.Error)
			continue
		}
		fmt.Printf("# %s\n", result.Dir)
		if cfg.Output.Format == "json" {
			if err := pipeline.RenderJSON(os.Stdout, result.Store); err != nil {
				return err
			}
		} else {
			if err := pipeline.RenderYAML(os.Stdout, result.Store); err != nil {
				return err
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d projects failed", failures, len(results))
	}
	return nil
}
