package webassets

import (
	"bufio"
	"io"

	"github.com/a-h/templ"
)

// WriteElement serializes el as HTML. Attributes with an empty value are left out.
func WriteElement(w io.Writer, el Element) error {
	bw := bufio.NewWriter(w)
	writeElement(bw, el)
	return bw.Flush()
}

// WriteElements serializes els in order.
func WriteElements(w io.Writer, els []Element) error {
	bw := bufio.NewWriter(w)
	for _, el := range els {
		writeElement(bw, el)
	}
	return bw.Flush()
}

func writeElement(w *bufio.Writer, el Element) {
	w.WriteByte('<')
	w.WriteString(el.Tag)
	for _, attr := range el.Attrs {
		if attr.Value == "" {
			continue
		}
		w.WriteByte(' ')
		w.WriteString(templ.EscapeString(attr.Key))
		w.WriteString(`="`)
		w.WriteString(templ.EscapeString(attr.Value))
		w.WriteByte('"')
	}
	if el.Void {
		w.WriteString("/>")
		return
	}
	w.WriteByte('>')
	w.WriteString(templ.EscapeString(el.Text))
	w.WriteString(el.HTML)
	w.WriteString("</")
	w.WriteString(el.Tag)
	w.WriteByte('>')
}
