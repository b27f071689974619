package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mkorsak/provenir/internal/store"
)

// Guesser extracts metadata for one project directory
type Guesser interface {
	Guess(ctx context.Context, dir string) (*store.Store, error)
}

// GuessJob runs metadata extraction for a single project directory
type GuessJob struct {
	Dir     string
	Guesser Guesser
}

// Execute runs the job
func (j *GuessJob) Execute(ctx context.Context) Result {
	st, err := j.Guesser.Guess(ctx, j.Dir)
	return &GuessResult{Dir: j.Dir, Store: st, Error: err}
}

// GuessResult is the outcome for one project directory
type GuessResult struct {
	Dir   string
	Store *store.Store
	Error error
}

// GetError returns the job error, if any
func (r *GuessResult) GetError() error {
	return r.Error
}

// BatchProcessor extracts metadata for many projects concurrently.
// Each project gets its own store and engine run; no state is shared.
type BatchProcessor struct {
	guesser     Guesser
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(guesser Guesser, concurrency int) *BatchProcessor {
	return &BatchProcessor{guesser: guesser, concurrency: concurrency}
}

// ProcessDirs runs extraction for each directory concurrently
func (b *BatchProcessor) ProcessDirs(ctx context.Context, dirs []string) []*GuessResult {
	if len(dirs) == 0 {
		return []*GuessResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, dir := range dirs {
		pool.Submit(&GuessJob{Dir: dir, Guesser: b.guesser})
	}

	results := pool.Wait()

	guessResults := make([]*GuessResult, len(results))
	for i, result := range results {
		guessResults[i] = result.(*GuessResult)
	}
	return guessResults
}

// ProcessFile reads project directories from a file (one per line) and
// processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*GuessResult, error) {
	dirs, err := ReadDirsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read dirs: %w", err)
	}
	return b.ProcessDirs(ctx, dirs), nil
}

// ReadDirsFromFile reads directory paths from a file, skipping blank
// lines, comments and duplicates
func ReadDirsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var dirs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			dirs = append(dirs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return dirs, nil
}
