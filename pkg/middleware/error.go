package middleware

import (
	"errors"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/astro-fusion/numerology-white-paper/pkg/context"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

type ErrorResponse struct {
	Message   string         `json:"message"`
	RequestID string         `json:"request_id"`
	TraceID   string         `json:"trace_id"`
	Meta      map[string]any `json:"meta"`
}

// Error is the central echo error handler. Domain errors map to their
// natural status codes; everything else falls through to httperror or 500.
func Error(logger ectologger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		ctx := c.Request().Context()
		logger.WithContext(ctx).WithError(err).Error("api is returning an error")
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "Internal Server Error"
		meta := map[string]any{}

		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		}

		var outOfRange *models.OutOfRangeError
		var invalidDigit *models.InvalidDigitError
		var providerErr *models.ProviderError
		var configErr *models.ConfigurationError

		switch {
		case errors.As(err, &outOfRange):
			code = http.StatusBadRequest
			message = outOfRange.Error()
		case errors.As(err, &invalidDigit):
			code = http.StatusBadRequest
			message = invalidDigit.Error()
		case errors.As(err, &providerErr):
			code = http.StatusBadGateway
			message = providerErr.Error()
		case errors.As(err, &configErr):
			code = http.StatusInternalServerError
			message = configErr.Error()
		}

		if ok := httperror.IsHTTPError(err); ok {
			httperr := httperror.ToHTTPError(err)
			code = httperror.GetStatusCode(err)
			message = httperr.Error()
			meta = httperr.Meta
		}

		requestID := context.GetRequestID(ctx)
		traceID := tracing.GetTraceID(ctx)

		_ = c.JSON(code, ErrorResponse{
			Message:   message,
			RequestID: requestID,
			TraceID:   traceID,
			Meta:      meta,
		})
	}
}
