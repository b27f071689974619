package util

import (
	"net/http"
	"net/url"
	"strings"
)

// NewProxyFunc builds a proxy function from explicit configuration.
// Hosts matching noProxy connect directly; when no explicit proxy is
// set the standard environment variables apply.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	bypass := parseNoProxy(noProxy)
	return func(req *http.Request) (*url.URL, error) {
		if bypass(req.URL.Hostname()) {
			return nil, nil
		}
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}

// parseNoProxy turns a comma-separated host list into a matcher.
// Entries match exactly or as a domain suffix; "*" matches everything.
func parseNoProxy(noProxy string) func(host string) bool {
	var entries []string
	for _, entry := range strings.Split(noProxy, ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		entry = strings.TrimPrefix(entry, ".")
		if entry != "" {
			entries = append(entries, entry)
		}
	}

	return func(host string) bool {
		host = strings.ToLower(host)
		for _, entry := range entries {
			if entry == "*" || host == entry || strings.HasSuffix(host, "."+entry) {
				return true
			}
		}
		return false
	}
}
