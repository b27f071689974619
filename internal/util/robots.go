package util

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// RobotsChecker answers whether homepage consultation may fetch a URL.
// robots.txt files are cached per host for the lifetime of the checker.
type RobotsChecker struct {
	data      map[string]*robotstxt.RobotsData
	mu        sync.RWMutex
	client    *http.Client
	userAgent string
}

// NewRobotsChecker creates a robots.txt checker
func NewRobotsChecker(userAgent string, timeout time.Duration) *RobotsChecker {
	return &RobotsChecker{
		data:      make(map[string]*robotstxt.RobotsData),
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// IsAllowed reports whether the URL may be fetched. Hosts whose
// robots.txt cannot be retrieved or parsed allow everything.
func (r *RobotsChecker) IsAllowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	data, err := r.robotsFor(ctx, parsed)
	if err != nil {
		return true
	}
	return data.TestAgent(parsed.Path, r.userAgent)
}

func (r *RobotsChecker) robotsFor(ctx context.Context, u *url.URL) (*robotstxt.RobotsData, error) {
	r.mu.RLock()
	data, ok := r.data[u.Host]
	r.mu.RUnlock()
	if ok {
		return data, nil
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch robots.txt: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err = robotstxt.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}

	r.mu.Lock()
	r.data[u.Host] = data
	r.mu.Unlock()
	return data, nil
}
