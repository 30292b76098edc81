package webassets

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// AddCSSList appends every stylesheet named in a CSS list file.
//
// A list file starts with a header line beginning with "#" that contains
// Config.ListKeyword. Each following line holds one stylesheet URL, optionally
// followed by a media type. Blank lines and lines starting with "#" are
// skipped. URLs starting with "/" are root-relative, other relative URLs are
// resolved against the directory of the list file. The call registers nothing
// unless every entry is valid.
func (a *Assets) AddCSSList(url string) error {
	srcs, err := a.loadCSSList(url)
	if err != nil {
		return err
	}
	a.cssSources = append(a.cssSources, srcs...)
	return nil
}

// PushCSSList is like AddCSSList but puts the listed stylesheets, in list
// order, in front of all others.
func (a *Assets) PushCSSList(url string) error {
	srcs, err := a.loadCSSList(url)
	if err != nil {
		return err
	}
	a.cssSources = append(srcs, a.cssSources...)
	return nil
}

func (a *Assets) loadCSSList(url string) ([]CSSSource, error) {
	listHref := combineURL(a.cfg.CSSRoot, url)
	if !isRelativeURL(listHref) {
		return nil, fmt.Errorf("webassets: css list %q is not a local URL", url)
	}
	path, err := a.checkFile("CSS list", listHref)
	if err != nil {
		return nil, fmt.Errorf("webassets: add css list %q: %w", url, err)
	}
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("webassets: read css list %q: %w", path, err)
	}

	var srcs []CSSSource
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if line == 1 {
			if !a.isListHeader(text) {
				return nil, fmt.Errorf("webassets: %s: %w: missing '# %s' header", path, ErrMalformedList, a.cfg.ListKeyword)
			}
			continue
		}
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) > 2 {
			return nil, fmt.Errorf("webassets: %w", &ListError{File: path, Line: line, Err: fmt.Errorf("%w: unexpected %q", ErrMalformedList, fields[2])})
		}
		media := ""
		if len(fields) == 2 {
			media = fields[1]
		}
		href := combineURL(listHref, fields[0])
		if isRelativeURL(href) {
			if _, err := a.checkFile("CSS", href); err != nil {
				return nil, fmt.Errorf("webassets: %w", &ListError{File: path, Line: line, Err: err})
			}
		}
		srcs = append(srcs, CSSSource{Href: href, Media: media})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("webassets: read css list %q: %w", path, err)
	}
	if line == 0 {
		return nil, fmt.Errorf("webassets: %s: %w: empty file", path, ErrMalformedList)
	}

	a.logger.Debugf("css list %s: %d sources", listHref, len(srcs))
	return srcs, nil
}

func (a *Assets) isListHeader(line string) bool {
	return strings.HasPrefix(line, "#") && strings.Contains(line, a.cfg.ListKeyword)
}
