package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/eringen/webassets"
)

// runCheck loads every CSS list into its own Assets and reports the result per list.
func runCheck(out io.Writer, urls []string) error {
	if len(urls) == 0 {
		return errors.New("no lists given")
	}
	cfg := webassets.ConfigFromEnv()
	failed := 0
	for _, u := range urls {
		a := webassets.New(cfg)
		if err := a.AddCSSList(u); err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n  %v\n", u, err)
			continue
		}
		fmt.Fprintf(out, "ok   %s (%d stylesheets)\n", u, len(a.CSSSources()))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d lists failed", failed, len(urls))
	}
	return nil
}
