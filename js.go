package webassets

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AddJSCall registers a call of function fn of the JavaScript module
// namespace (e.g. "Shop/Cart") with args. The module file must exist under
// Config.JSRoot. Args are serialized as JSON.
func (a *Assets) AddJSCall(namespace, fn string, args ...any) error {
	if _, err := a.checkFile("JavaScript", a.jsNamespaceURL(namespace)); err != nil {
		return fmt.Errorf("webassets: add js call %s.%s: %w", namespace, fn, err)
	}
	return a.AddTrustedJSCall(namespace, fn, args...)
}

// AddJSClassCall is like AddJSCall for the module of a namespaced identifier.
func (a *Assets) AddJSClassCall(identifier, fn string, args ...any) error {
	return a.AddJSCall(NamespaceToPath(identifier, a.cfg.NamespaceSeparator), fn, args...)
}

// AddTrustedJSCall registers a function call without checking that the module exists.
func (a *Assets) AddTrustedJSCall(namespace, fn string, args ...any) error {
	encoded := make([]string, len(args))
	for i, arg := range args {
		b, err := json.Marshal(arg)
		if err != nil {
			return fmt.Errorf("webassets: encode argument %d of %s.%s: %w", i, namespace, fn, err)
		}
		encoded[i] = string(b)
	}
	ns, err := json.Marshal(namespace)
	if err != nil {
		return fmt.Errorf("webassets: encode namespace %q: %w", namespace, err)
	}

	var b strings.Builder
	b.WriteString("require([")
	b.Write(ns)
	b.WriteString("],function(page){'use strict';page.")
	b.WriteString(fn)
	b.WriteString("(")
	b.WriteString(strings.Join(encoded, ","))
	b.WriteString(");});")
	a.javaScript += b.String()

	a.logger.Debugf("js call %s.%s", namespace, fn)
	return nil
}

// SetJSMain sets the page trailer to the module loader with the main script
// of a namespaced identifier as data-main, e.g. "Shop.Cart" gives
// <script src="/js/require.js" data-main="/js/Shop/Cart.main.js">.
func (a *Assets) SetJSMain(identifier string) error {
	mainURL := a.cfg.JSRoot + NamespaceToPath(identifier, a.cfg.NamespaceSeparator) + ".main.js"
	if _, err := a.checkFile("JavaScript", mainURL); err != nil {
		return fmt.Errorf("webassets: set js main %q: %w", identifier, err)
	}
	a.trailer = &ScriptTrailer{
		Src:      a.jsNamespaceURL(a.cfg.Loader),
		DataMain: mainURL,
	}
	return nil
}

// SetJSMainScript sets the page trailer to a plain script element with src.
func (a *Assets) SetJSMainScript(src string) {
	a.trailer = &ScriptTrailer{Src: src}
}

// JavaScript returns the inline JavaScript registered so far.
func (a *Assets) JavaScript() string {
	return a.javaScript
}

func (a *Assets) jsNamespaceURL(namespace string) string {
	return a.cfg.JSRoot + namespace + ".js"
}
