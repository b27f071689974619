// Package homepage implements the homepage consultation collaborator:
// fetch a project's homepage and guess repository and bug tracker
// locations from its outbound links.
package homepage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mkorsak/provenir/internal/cache"
	"github.com/mkorsak/provenir/internal/model"
	"github.com/mkorsak/provenir/internal/util"
	"github.com/mkorsak/provenir/internal/worker"
)

// Consultant fetches homepages politely (robots.txt, per-host rate
// limit, response cache) and extracts candidate facts from them.
type Consultant struct {
	client    *http.Client
	robots    *util.RobotsChecker
	limiter   *worker.Limiter
	cache     cache.Cache // nil disables caching
	cacheTTL  time.Duration
	userAgent string
	maxBytes  int64
}

// NewConsultant creates a consultant from configuration
func NewConsultant(cfg *model.Config, c cache.Cache) *Consultant {
	return &Consultant{
		client: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:   worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, cfg.Concurrency.Burst),
		cache:     c,
		cacheTTL:  cfg.Cache.TTL,
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}
}

// Consult fetches the homepage and returns facts guessed from its
// links, each at certainty Possible with the homepage as origin.
func (c *Consultant) Consult(ctx context.Context, rawURL string) ([]model.Fact, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse homepage URL: %w", err)
	}

	body, err := c.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return GuessFromPage(body, base), nil
}

func (c *Consultant) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if c.cache != nil {
		if body, found := c.cache.Get(cache.Key(rawURL)); found {
			return body, nil
		}
	}

	if !c.robots.IsAllowed(ctx, rawURL) {
		return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}
	if err := c.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch homepage: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if c.cache != nil {
		_ = c.cache.Set(cache.Key(rawURL), body, c.cacheTTL)
	}
	return body, nil
}

// Link labels that point at a source repository
var repositoryLabels = map[string]bool{
	"github":            true,
	"gitlab":            true,
	"git":               true,
	"repository":        true,
	"source":            true,
	"source code":       true,
	"github repository": true,
	"gitlab repository": true,
}

// Link labels that point at a bug tracker
var bugDatabaseLabels = map[string]bool{
	"bug tracker":         true,
	"issue tracker":       true,
	"issues":              true,
	"report a bug":        true,
	"github bug tracking": true,
}

// GuessFromPage extracts candidate facts from homepage HTML. Anchor
// text and aria-labels are matched against known link labels; matches
// become Repository or Bug-Database facts at certainty Possible.
func GuessFromPage(body []byte, base *url.URL) []model.Fact {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil
	}

	var facts []model.Fact
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if fact, ok := factFromAnchor(n, base); ok {
				facts = append(facts, fact)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return facts
}

func factFromAnchor(n *html.Node, base *url.URL) (model.Fact, bool) {
	var href, ariaLabel string
	for _, attr := range n.Attr {
		switch attr.Key {
		case "href":
			href = attr.Val
		case "aria-label":
			ariaLabel = attr.Val
		}
	}
	if href == "" {
		return model.Fact{}, false
	}

	target, err := base.Parse(href)
	if err != nil {
		return model.Fact{}, false
	}

	for _, label := range []string{ariaLabel, nodeText(n)} {
		label = strings.ToLower(strings.TrimSpace(label))
		if label == "" {
			continue
		}
		switch {
		case repositoryLabels[label]:
			return model.Fact{
				Datum:     model.Repository(target.String()),
				Certainty: model.CertaintyPossible,
				Origin:    model.URLOrigin(base.String()),
			}, true
		case bugDatabaseLabels[label]:
			return model.Fact{
				Datum:     model.BugDatabase(target.String()),
				Certainty: model.CertaintyPossible,
				Origin:    model.URLOrigin(base.String()),
			}, true
		}
	}
	return model.Fact{}, false
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(nodeText(child))
	}
	return b.String()
}
