package client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// nextPage returns the rel="next" target of the Link header resolved against
// current, or nil when there is no further page.
func nextPage(current *url.URL, header http.Header) (*url.URL, error) {
	for _, value := range header.Values("Link") {
		for _, link := range strings.Split(value, ",") {
			target, rel, ok := parseLink(link)
			if !ok || rel != "next" {
				continue
			}
			ref, err := url.Parse(target)
			if err != nil {
				return nil, fmt.Errorf("invalid next link %q: %w", target, err)
			}
			return current.ResolveReference(ref), nil
		}
	}
	return nil, nil
}

// parseLink splits `<target>; rel="next"` into its target and rel.
func parseLink(link string) (target, rel string, ok bool) {
	parts := strings.Split(strings.TrimSpace(link), ";")
	first := strings.TrimSpace(parts[0])
	if !strings.HasPrefix(first, "<") || !strings.HasSuffix(first, ">") {
		return "", "", false
	}
	target = first[1 : len(first)-1]

	for _, param := range parts[1:] {
		key, value, found := strings.Cut(strings.TrimSpace(param), "=")
		if found && strings.EqualFold(strings.TrimSpace(key), "rel") {
			rel = strings.Trim(strings.TrimSpace(value), `"`)
		}
	}
	return target, rel, true
}
