package score

import (
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/astro-fusion/numerology-white-paper/pkg/engine"
	"github.com/astro-fusion/numerology-white-paper/pkg/events"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

var validate = validator.New()

// Register registers score routes
func Register(g *echo.Group) {
	g.POST("", Compute)
}

// ComputeRequest is the request body for computing a dignity score. Exactly
// one of planet, digit, or number selects the subject. Numbers arrive fully
// reduced; the upstream numerology service owns the reduction.
type ComputeRequest struct {
	Planet  *string                  `json:"planet,omitempty"`
	Digit   *int                     `json:"digit,omitempty" validate:"omitempty,min=1,max=9"`
	Number  *models.NumerologyNumber `json:"number,omitempty"`
	Instant time.Time                `json:"instant" validate:"required"`
}

// ComputeResponse wraps an assessment with the digit that selected it, if any
type ComputeResponse struct {
	Digit *int `json:"digit,omitempty"`
	*models.Assessment
}

// Compute assesses a planet, or the planet ruling a digit, at an instant
func Compute(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "score_handler.Compute")
	defer span.End()

	var req ComputeRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	selectors := 0
	for _, set := range []bool{req.Planet != nil, req.Digit != nil, req.Number != nil} {
		if set {
			selectors++
		}
	}
	if selectors != 1 {
		return httperror.NewHTTPError(http.StatusBadRequest, "exactly one of planet, digit, or number is required")
	}

	digit := req.Digit
	if req.Number != nil {
		if !req.Number.Valid() {
			return httperror.NewHTTPError(http.StatusBadRequest, "number digit must be between 1 and 9")
		}
		digit = &req.Number.Digit
	}

	ctx, eng, err := ectoinject.GetContext[*engine.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	var assessment *models.Assessment
	if digit != nil {
		assessment, err = eng.AssessDigit(ctx, *digit, req.Instant)
	} else {
		planet, parseErr := models.ParsePlanet(*req.Planet)
		if parseErr != nil {
			return httperror.NewHTTPError(http.StatusBadRequest, parseErr.Error())
		}
		assessment, err = eng.AssessPlanet(ctx, planet, req.Instant)
	}
	if err != nil {
		return err
	}

	// Emission is best effort; the producer logs its own failures
	if ctx, emitter, emitErr := ectoinject.GetContext[*events.Emitter](ctx); emitErr == nil {
		_ = emitter.EmitScoreComputed(ctx, assessment, digit)
	}

	return c.JSON(http.StatusOK, ComputeResponse{
		Digit:      digit,
		Assessment: assessment,
	})
}
