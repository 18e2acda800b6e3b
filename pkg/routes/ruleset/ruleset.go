package ruleset

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/labstack/echo/v4"

	"github.com/astro-fusion/numerology-white-paper/pkg/engine"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

// Register registers ruleset routes
func Register(g *echo.Group) {
	g.GET("", Get)
}

// Get returns the validated fact tables the engine is serving with
func Get(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "ruleset_handler.Get")
	defer span.End()

	ctx, eng, err := ectoinject.GetContext[*engine.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	return c.JSON(http.StatusOK, eng.Ruleset())
}
