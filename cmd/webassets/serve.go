package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/eringen/webassets"
)

func runServe() error {
	cfg := webassets.ConfigFromEnv()
	e := newServer(cfg, webassets.EnvOr("WEBASSETS_LIST", ""), webassets.EnvOr("WEBASSETS_MAIN", ""))
	if err := e.Start(webassets.EnvOr("WEBASSETS_ADDR", ":3000")); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func newServer(cfg webassets.Config, list, mainIdentifier string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("%s %s -> %d (%s)", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(webassets.Middleware(cfg))

	staticDir := cfg.AssetDir
	if staticDir == "" {
		staticDir = "public"
	}
	e.Static("/", staticDir)

	e.GET("/", func(c echo.Context) error {
		a := webassets.FromContext(c)
		a.SetTitle("webassets")
		a.PushTitle("Demo")
		a.AddMeta(webassets.Attr{Key: "name", Value: "viewport"}, webassets.Attr{Key: "content", Value: "width=device-width, initial-scale=1"})
		a.AddKeywords("webassets", "echo", "templ")
		if list != "" {
			if err := a.AddCSSList(list); err != nil {
				return err
			}
		}
		if mainIdentifier != "" {
			if err := a.SetJSMain(mainIdentifier); err != nil {
				return err
			}
		}
		return webassets.RenderPage(c, demoBody(a))
	})

	return e
}

func demoBody(a *webassets.Assets) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>%s</h1><p>%d stylesheets registered.</p>",
			templ.EscapeString(a.Title()), len(a.CSSSources()))
		return err
	})
}
