package trajectory

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectoinject"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	trajectoryrepo "github.com/astro-fusion/numerology-white-paper/internal/repositories/trajectory"
	"github.com/astro-fusion/numerology-white-paper/pkg/engine"
	"github.com/astro-fusion/numerology-white-paper/pkg/events"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/sampler"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

var validate = validator.New()

// Register registers trajectory routes
func Register(g *echo.Group) {
	g.GET("", List)
	g.POST("", Create)
	g.GET("/:id", Get)
	g.DELETE("/:id", Delete)
}

// CreateRequest is the request body for computing a trajectory. Exactly one
// of planet or digit selects the subject.
type CreateRequest struct {
	Planet    *string   `json:"planet,omitempty"`
	Digit     *int      `json:"digit,omitempty" validate:"omitempty,min=1,max=9"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required"`
	StepHours int       `json:"step_hours" validate:"omitempty,min=1"`
}

// Create computes a trajectory over a date range and persists it
func Create(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "trajectory_handler.Create")
	defer span.End()

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if (req.Planet == nil) == (req.Digit == nil) {
		return httperror.NewHTTPError(http.StatusBadRequest, "exactly one of planet or digit is required")
	}

	ctx, eng, err := ectoinject.GetContext[*engine.Engine](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	var planet models.Planet
	if req.Digit != nil {
		planet, err = eng.RulingPlanet(*req.Digit)
		if err != nil {
			return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	} else {
		planet, err = models.ParsePlanet(*req.Planet)
		if err != nil {
			return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	stepHours := req.StepHours
	if stepHours < 1 {
		stepHours = int(sampler.DefaultStep / time.Hour)
	}

	ctx, smp, err := ectoinject.GetContext[*sampler.Sampler](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	points, err := smp.Trajectory(ctx, sampler.Request{
		Planet: planet,
		Start:  req.StartDate,
		End:    req.EndDate,
		Step:   time.Duration(stepHours) * time.Hour,
	})
	if err != nil {
		if errors.Is(err, sampler.ErrInvalidRange) {
			return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	pointsJSON, err := json.Marshal(points)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to encode trajectory points")
	}

	ctx, repo, err := ectoinject.GetContext[*trajectoryrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	created, err := repo.Create(ctx, models.CreateTrajectoryRequest{
		Planet:    planet,
		Digit:     req.Digit,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StepHours: stepHours,
		Points:    pointsJSON,
	})
	if err != nil {
		return err
	}

	// Emission is best effort; the producer logs its own failures
	if ctx, emitter, emitErr := ectoinject.GetContext[*events.Emitter](ctx); emitErr == nil {
		_ = emitter.EmitTrajectoryComputed(ctx, created, len(points))
	}

	return c.JSON(http.StatusCreated, created)
}

// Get retrieves a stored trajectory by ID
func Get(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "trajectory_handler.Get")
	defer span.End()

	id := c.Param("id")

	ctx, repo, err := ectoinject.GetContext[*trajectoryrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	trajectory, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trajectory)
}

// ListResponse is a page of stored trajectories
type ListResponse struct {
	Items      []models.Trajectory `json:"items"`
	TotalCount int                 `json:"total_count"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
}

// List returns stored trajectories, optionally filtered by planet
func List(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "trajectory_handler.List")
	defer span.End()

	var planet *models.Planet
	if raw := c.QueryParam("planet"); raw != "" {
		parsed, err := models.ParsePlanet(raw)
		if err != nil {
			return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		planet = &parsed
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	ctx, repo, err := ectoinject.GetContext[*trajectoryrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	items, totalCount, err := repo.List(ctx, planet, page, pageSize)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ListResponse{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	})
}

// Delete soft deletes a stored trajectory
func Delete(c echo.Context) error {
	ctx := c.Request().Context()
	ctx, span := tracing.StartSpan(ctx, "trajectory_handler.Delete")
	defer span.End()

	id := c.Param("id")

	ctx, repo, err := ectoinject.GetContext[*trajectoryrepo.Repository](ctx)
	if err != nil {
		return httperror.NewHTTPError(http.StatusInternalServerError, "service unavailable")
	}

	if err := repo.Delete(ctx, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
