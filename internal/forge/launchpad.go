package forge

import "net/url"

// Launchpad is the forge profile for launchpad.net
type Launchpad struct{}

func (Launchpad) Name() string { return "Launchpad" }

func (Launchpad) RepositoryBrowseCanBeHomepage() bool { return false }

func (Launchpad) BugDatabaseURLFromBugSubmitURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	// https://bugs.launchpad.net/<project>/+filebug -> .../<project>
	if len(segments) != 2 || segments[1] != "+filebug" {
		return nil
	}
	return withPathSegments(u, segments[:1])
}

func (Launchpad) BugSubmitURLFromBugDatabaseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) != 1 {
		return nil
	}
	return withPathSegments(u, append(segments[:1:1], "+filebug"))
}

func (Launchpad) BugDatabaseURLFromRepoURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 1 {
		return nil
	}
	out := withPathSegments(u, segments[:1])
	out.Scheme = "https"
	out.Host = "bugs.launchpad.net"
	return out
}

func (Launchpad) RepoURLFromBrowseURL(u *url.URL) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 1 {
		return nil
	}
	out := withPathSegments(u, segments[:1])
	out.Scheme = "https"
	out.Host = "code.launchpad.net"
	return out
}

func (Launchpad) BrowseURLFromRepoURL(u *url.URL, subpath string) *url.URL {
	segments := pathSegments(u)
	if len(segments) < 1 {
		return nil
	}
	out := withPathSegments(u, segments[:1])
	out.Scheme = "https"
	out.Host = "code.launchpad.net"
	// Launchpad has no stable per-file browse URL scheme we can build
	// offline, so a subpath just falls back to the tree root.
	return out
}
