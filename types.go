package webassets

// Attr is a single HTML attribute. Attributes keep their insertion order when rendered.
type Attr struct {
	Key   string
	Value string
}

// Element describes one markup element for a caller to serialize.
// Text is escaped on output, HTML is written as is.
type Element struct {
	Tag   string
	Attrs []Attr
	Text  string
	HTML  string
	Void  bool // rendered as <tag .../> without content or end tag
}

// CSSSource is a stylesheet referenced by a link element.
type CSSSource struct {
	Href  string
	Media string
}

func (s CSSSource) attrs() []Attr {
	return []Attr{
		{Key: "href", Value: s.Href},
		{Key: "media", Value: s.Media},
		{Key: "rel", Value: "stylesheet"},
		{Key: "type", Value: "text/css"},
	}
}

// ScriptTrailer is the script element emitted near the end of the page to
// bootstrap client side code.
type ScriptTrailer struct {
	Src      string
	DataMain string
}

func (t ScriptTrailer) attrs() []Attr {
	return []Attr{
		{Key: "src", Value: t.Src},
		{Key: "data-main", Value: t.DataMain},
	}
}
