package forge

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Forge describes a code hosting site well enough to transform URLs
// between its repository, bug database and bug submission pages.
// Implementations are stateless; methods return nil when a URL does
// not match the shape the forge expects.
type Forge interface {
	// Name returns the forge name
	Name() string

	// RepositoryBrowseCanBeHomepage reports whether a browse URL on
	// this forge is plausibly used as a project homepage
	RepositoryBrowseCanBeHomepage() bool

	// BugDatabaseURLFromBugSubmitURL derives the bug tracker URL from
	// a new-bug submission URL
	BugDatabaseURLFromBugSubmitURL(u *url.URL) *url.URL

	// BugSubmitURLFromBugDatabaseURL derives the new-bug submission
	// URL from a bug tracker URL
	BugSubmitURLFromBugDatabaseURL(u *url.URL) *url.URL

	// BugDatabaseURLFromRepoURL derives the bug tracker URL from a
	// repository URL
	BugDatabaseURLFromRepoURL(u *url.URL) *url.URL

	// RepoURLFromBrowseURL derives a cloneable repository URL from a
	// browse URL
	RepoURLFromBrowseURL(u *url.URL) *url.URL

	// BrowseURLFromRepoURL derives a browse URL from a repository URL,
	// optionally pointing at a subpath within the tree
	BrowseURLFromRepoURL(u *url.URL, subpath string) *url.URL
}

// probeClient is used for GitLab host detection; injectable for tests
var probeClient = &http.Client{Timeout: 5 * time.Second}

// knownGitLabHosts are hosts we recognize as GitLab without probing
var knownGitLabHosts = []string{
	"gitlab.com",
	"salsa.debian.org",
	"invent.kde.org",
	"gitlab.gnome.org",
	"gitlab.freedesktop.org",
	"gitlab.labs.nic.cz",
	"code.videolan.org",
	"framagit.org",
	"foss.heptapod.net",
}

// IsGitLabSite reports whether the host runs GitLab. Well-known hosts
// and "gitlab."-prefixed hosts are recognized offline; other hosts are
// probed only when netAccess is true.
func IsGitLabSite(host string, netAccess bool) bool {
	if host == "" {
		return false
	}
	for _, known := range knownGitLabHosts {
		if host == known {
			return true
		}
	}
	if strings.HasPrefix(host, "gitlab.") {
		return true
	}
	if !netAccess {
		return false
	}
	resp, err := probeClient.Get("https://" + host + "/api/v4/version")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	// Unauthenticated instances answer 401, authenticated ones 200;
	// anything else is not a GitLab API.
	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusUnauthorized
}

// Find returns the forge profile for a URL, or nil if the host is not
// a recognized hosting site.
func Find(u *url.URL, netAccess bool) Forge {
	host := u.Hostname()
	switch {
	case host == "sourceforge.net":
		return SourceForge{}
	case host == "launchpad.net" || strings.HasSuffix(host, ".launchpad.net"):
		return Launchpad{}
	case host == "github.com":
		return GitHub{}
	case IsGitLabSite(host, netAccess):
		return GitLab{}
	}
	return nil
}

// withPathSegments returns a copy of u with its path replaced
func withPathSegments(u *url.URL, segments []string) *url.URL {
	out := *u
	out.Path = "/" + strings.Join(segments, "/")
	out.RawQuery = ""
	out.Fragment = ""
	return &out
}

// pathSegments splits the URL path into non-empty segments
func pathSegments(u *url.URL) []string {
	trimmed := strings.Trim(u.EscapedPath(), "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
