package webassets

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// WriteStylesheets writes the link and style elements.
func (a *Assets) WriteStylesheets(w io.Writer) error {
	return WriteElements(w, a.StylesheetElements())
}

// WriteScripts writes the inline script and the trailer script elements.
func (a *Assets) WriteScripts(w io.Writer) error {
	return WriteElements(w, a.ScriptElements())
}

// WriteMeta writes the meta elements.
func (a *Assets) WriteMeta(w io.Writer) error {
	return WriteElements(w, a.MetaElements())
}

// WriteTitle writes the title element.
func (a *Assets) WriteTitle(w io.Writer) error {
	return WriteElements(w, a.TitleElements())
}

// Stylesheets renders the link and style elements. The elements are built
// when the component renders, not when it is created.
func (a *Assets) Stylesheets() templ.Component {
	return elementsComponent(a.StylesheetElements)
}

// Scripts renders the inline script and trailer script elements.
func (a *Assets) Scripts() templ.Component {
	return elementsComponent(a.ScriptElements)
}

// MetaTags renders the meta elements.
func (a *Assets) MetaTags() templ.Component {
	return elementsComponent(a.MetaElements)
}

// PageTitle renders the title element.
func (a *Assets) PageTitle() templ.Component {
	return elementsComponent(a.TitleElements)
}

// Head renders the contents of the head element: meta, title and stylesheets.
func (a *Assets) Head() templ.Component {
	return elementsComponent(func() []Element {
		var els []Element
		els = append(els, a.MetaElements()...)
		els = append(els, a.TitleElements()...)
		els = append(els, a.StylesheetElements()...)
		return els
	})
}

// Document renders a complete HTML page around body. The head is rendered
// before body, the scripts after it, so JavaScript registered while body
// renders still ends up on the page.
func (a *Assets) Document(body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html><html><head>"); err != nil {
			return err
		}
		if err := a.Head().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</head><body>"); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		if err := a.Scripts().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</body></html>")
		return err
	})
}

func elementsComponent(build func() []Element) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return WriteElements(w, build())
	})
}

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// RenderPage writes body wrapped in a full document built from the request's Assets.
func RenderPage(c echo.Context, body templ.Component) error {
	return Render(c, FromContext(c).Document(body))
}
