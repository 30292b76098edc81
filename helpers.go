package webassets

import (
	"net/url"
	"strings"
)

// combineURL resolves ref against base. Absolute and root-relative refs are returned unchanged.
func combineURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// isRelativeURL reports whether u has neither a scheme nor a host, i.e. is served by this site.
func isRelativeURL(u string) bool {
	p, err := url.Parse(u)
	if err != nil {
		return true
	}
	return p.Scheme == "" && p.Host == ""
}

// filterEmpty removes empty/whitespace-only strings from a slice.
func filterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
