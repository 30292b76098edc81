package webassets

import (
	"sort"
	"strings"
)

// titleSentinel is ignored by AppendTitle and PushTitle.
const titleSentinel = "-"

// Title returns the page title.
func (a *Assets) Title() string {
	return a.title
}

// SetTitle replaces the page title.
func (a *Assets) SetTitle(title string) {
	a.title = title
}

// AppendTitle adds part at the end of the title, separated by Config.TitleSeparator.
// Empty parts and "-" leave the title unchanged.
func (a *Assets) AppendTitle(part string) {
	if part == "" || part == titleSentinel {
		return
	}
	if a.title != "" {
		a.title += a.cfg.TitleSeparator
	}
	a.title += part
}

// PushTitle adds part in front of the title.
func (a *Assets) PushTitle(part string) {
	if part == "" || part == titleSentinel {
		return
	}
	if a.title != "" {
		a.title = part + a.cfg.TitleSeparator + a.title
		return
	}
	a.title = part
}

// AddMeta registers a meta element with attributes in the given order.
func (a *Assets) AddMeta(attrs ...Attr) {
	a.meta = append(a.meta, append([]Attr(nil), attrs...))
}

// AddMetaAttributes registers a meta element. Attributes are sorted by key.
func (a *Assets) AddMetaAttributes(attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	m := make([]Attr, 0, len(keys))
	for _, k := range keys {
		m = append(m, Attr{Key: k, Value: attrs[k]})
	}
	a.meta = append(a.meta, m)
}

// AddKeyword adds one keyword to the keywords meta element.
func (a *Assets) AddKeyword(keyword string) {
	a.AddKeywords(keyword)
}

// AddKeywords adds keywords to the keywords meta element. Blank keywords are dropped.
func (a *Assets) AddKeywords(keywords ...string) {
	a.keywords = append(a.keywords, filterEmpty(keywords)...)
}

// Keywords returns the keywords joined as they appear in the keywords meta element.
func (a *Assets) Keywords() string {
	return strings.Join(a.keywords, ",")
}
