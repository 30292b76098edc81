package webassets

import (
	"github.com/labstack/echo/v4"
)

const contextKey = "webassets"

// Middleware attaches a fresh Assets to every request. Handlers fetch it with
// FromContext. The request's Echo logger is used unless opts set another one.
func Middleware(cfg Config, opts ...Option) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqOpts := make([]Option, 0, len(opts)+1)
			reqOpts = append(reqOpts, WithLogger(c.Logger()))
			reqOpts = append(reqOpts, opts...)
			c.Set(contextKey, New(cfg, reqOpts...))
			return next(c)
		}
	}
}

// FromContext returns the Assets of the request. Without Middleware a new
// Assets with the default Config is created and attached on first use.
func FromContext(c echo.Context) *Assets {
	if a, ok := c.Get(contextKey).(*Assets); ok {
		return a
	}
	a := New(Config{}, WithLogger(c.Logger()))
	c.Set(contextKey, a)
	return a
}
