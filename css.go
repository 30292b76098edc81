package webassets

import "fmt"

// AddCSSFile appends a stylesheet. url is resolved against Config.CSSRoot; a
// relative result must exist in the asset directory. media may be empty.
func (a *Assets) AddCSSFile(url, media string) error {
	src, err := a.cssSource(url, media)
	if err != nil {
		return err
	}
	a.cssSources = append(a.cssSources, src)
	return nil
}

// PushCSSFile is like AddCSSFile but puts the stylesheet in front of all others.
func (a *Assets) PushCSSFile(url, media string) error {
	src, err := a.cssSource(url, media)
	if err != nil {
		return err
	}
	a.cssSources = append([]CSSSource{src}, a.cssSources...)
	return nil
}

// AddCSSClassFile appends the stylesheet that belongs to a namespaced
// identifier: "Shop.Cart" with media "print" maps to /css/Shop/Cart.print.css.
func (a *Assets) AddCSSClassFile(identifier, media string) error {
	return a.AddCSSFile(a.CSSClassURL(identifier, media), media)
}

// PushCSSClassFile is like AddCSSClassFile but puts the stylesheet in front.
func (a *Assets) PushCSSClassFile(identifier, media string) error {
	return a.PushCSSFile(a.CSSClassURL(identifier, media), media)
}

// AddTrustedCSSFile appends a stylesheet URL as given, without resolving it or
// checking that it exists.
func (a *Assets) AddTrustedCSSFile(url, media string) {
	a.cssSources = append(a.cssSources, CSSSource{Href: url, Media: media})
}

// CSSClassURL returns the root-relative URL of the stylesheet of a namespaced identifier.
func (a *Assets) CSSClassURL(identifier, media string) string {
	u := a.cfg.CSSRoot + NamespaceToPath(identifier, a.cfg.NamespaceSeparator)
	if media != "" {
		u += "." + media
	}
	return u + ".css"
}

// AddCSSLine appends a line of inline CSS.
func (a *Assets) AddCSSLine(line string) {
	a.cssLines = append(a.cssLines, line)
}

// PushCSSLine puts a line of inline CSS in front of all others.
func (a *Assets) PushCSSLine(line string) {
	a.cssLines = append([]string{line}, a.cssLines...)
}

// CSSSources returns a copy of the registered stylesheets in render order.
func (a *Assets) CSSSources() []CSSSource {
	return append([]CSSSource(nil), a.cssSources...)
}

func (a *Assets) cssSource(url, media string) (CSSSource, error) {
	href := combineURL(a.cfg.CSSRoot, url)
	if isRelativeURL(href) {
		if _, err := a.checkFile("CSS", href); err != nil {
			return CSSSource{}, fmt.Errorf("webassets: add css %q: %w", url, err)
		}
	}
	a.logger.Debugf("css source %s", href)
	return CSSSource{Href: href, Media: media}, nil
}
