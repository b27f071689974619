package providers

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkorsak/provenir/internal/model"
)

// GuessFromGitConfig reads the origin remote URL from .git/config.
// The remote is where the checkout came from, which is usually but not
// always the canonical repository, so the fact is only Likely.
func GuessFromGitConfig(dir string, trusted bool) ([]model.Fact, error) {
	path := filepath.Join(dir, ".git", "config")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open git config: %w", err)
	}
	defer func() { _ = file.Close() }()

	url := originRemoteURL(file)
	if url == "" {
		return nil, nil
	}
	return []model.Fact{{
		Datum:     model.Repository(url),
		Certainty: model.CertaintyLikely,
		Origin:    model.PathOrigin(path),
	}}, nil
}

// originRemoteURL scans the git config for the url line of the
// [remote "origin"] section. Git's config format is INI-like but close
// enough to parse line-wise for this single key.
func originRemoteURL(file *os.File) string {
	scanner := bufio.NewScanner(file)
	inOrigin := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			inOrigin = line == `[remote "origin"]`
			continue
		}
		if !inOrigin {
			continue
		}
		if key, value, ok := strings.Cut(line, "="); ok && strings.TrimSpace(key) == "url" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
