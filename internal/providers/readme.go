package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkorsak/provenir/internal/model"
)

var readmeCandidates = []string{
	"README.md",
	"README.rst",
	"README.txt",
	"README",
}

// GuessFromReadme uses the first prose paragraph of the README as a
// project description. A README opening is wordy and often decorative,
// so the guess is only Possible.
func GuessFromReadme(dir string, trusted bool) ([]model.Fact, error) {
	for _, candidate := range readmeCandidates {
		path := filepath.Join(dir, candidate)
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", candidate, err)
		}
		if description := firstParagraph(string(raw)); description != "" {
			return []model.Fact{{
				Datum:     model.Description(description),
				Certainty: model.CertaintyPossible,
				Origin:    model.PathOrigin(path),
			}}, nil
		}
		return nil, nil
	}
	return nil, nil
}

// firstParagraph returns the first block of plain prose, skipping
// titles, badges and horizontal rules.
func firstParagraph(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(lines) > 0 {
				break
			}
			continue
		}
		if isDecoration(trimmed) {
			if len(lines) > 0 {
				break
			}
			continue
		}
		lines = append(lines, trimmed)
	}
	return strings.Join(lines, " ")
}

func isDecoration(line string) bool {
	switch {
	case strings.HasPrefix(line, "#"): // markdown heading
		return true
	case strings.HasPrefix(line, "=") || strings.HasPrefix(line, "-"): // rst underline
		return true
	case strings.HasPrefix(line, "[!["): // badge row
		return true
	case strings.HasPrefix(line, ".. "): // rst directive
		return true
	}
	return false
}
