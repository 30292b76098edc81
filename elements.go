package webassets

import (
	"encoding/json"
	"strings"
)

// StylesheetElements returns one link element per stylesheet followed by a
// style element with the inline CSS, if any.
func (a *Assets) StylesheetElements() []Element {
	els := make([]Element, 0, len(a.cssSources)+1)
	for _, src := range a.cssSources {
		els = append(els, Element{Tag: "link", Attrs: src.attrs(), Void: true})
	}
	if len(a.cssLines) > 0 {
		els = append(els, Element{
			Tag: "style",
			Attrs: []Attr{
				{Key: "type", Value: "text/css"},
				{Key: "media", Value: "all"},
			},
			HTML: strings.Join(a.cssLines, ""),
		})
	}
	return els
}

// ScriptElements returns the inline script element, if any JavaScript calls
// were registered, followed by the trailer script element, if set.
func (a *Assets) ScriptElements() []Element {
	var els []Element
	if a.javaScript != "" {
		// json.Marshal escapes <, > and &, so the code cannot close the script element.
		code, _ := json.Marshal("require([],function(){" + a.javaScript + "});")
		els = append(els, Element{
			Tag:   "script",
			Attrs: []Attr{{Key: "type", Value: "text/javascript"}},
			HTML:  "/*<![CDATA[*/" + a.cfg.InlineScriptVar + "=" + string(code) + "/*]]>*/",
		})
	}
	if a.trailer != nil {
		els = append(els, Element{Tag: "script", Attrs: a.trailer.attrs()})
	}
	return els
}

// MetaElements returns the keywords meta element (if any keywords were added),
// the registered meta elements and, last, the charset meta element.
func (a *Assets) MetaElements() []Element {
	els := make([]Element, 0, len(a.meta)+2)
	if len(a.keywords) > 0 {
		els = append(els, Element{
			Tag: "meta",
			Attrs: []Attr{
				{Key: "name", Value: "keywords"},
				{Key: "content", Value: a.Keywords()},
			},
			Void: true,
		})
	}
	for _, attrs := range a.meta {
		els = append(els, Element{Tag: "meta", Attrs: attrs, Void: true})
	}
	els = append(els, Element{
		Tag:   "meta",
		Attrs: []Attr{{Key: "charset", Value: a.cfg.Charset}},
		Void:  true,
	})
	return els
}

// TitleElements returns the title element, or nothing when the title is empty.
func (a *Assets) TitleElements() []Element {
	if a.title == "" {
		return nil
	}
	return []Element{{Tag: "title", Text: a.title}}
}
