package trajectory

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/huandu/go-sqlbuilder"

	"github.com/astro-fusion/numerology-white-paper/pkg/database"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

// Repository handles trajectory persistence
type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

// NewRepository creates a new trajectory repository
func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Create persists a computed trajectory
func (r *Repository) Create(ctx context.Context, req models.CreateTrajectoryRequest) (*models.Trajectory, error) {
	ctx, span := tracing.StartSpan(ctx, "trajectory.Repository.Create")
	defer span.End()

	log := r.logger.WithContext(ctx).WithFields(map[string]any{
		"method": "Create",
		"planet": req.Planet,
	})

	now := time.Now().UTC()

	trajectory := &models.Trajectory{
		ID:        uuid.New().String(),
		Planet:    req.Planet,
		Digit:     req.Digit,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StepHours: req.StepHours,
		Points:    req.Points,
		CreatedAt: now,
		UpdatedAt: now,
	}

	sb := sqlbuilder.PostgreSQL.NewInsertBuilder()
	sb.InsertInto("trajectories")
	sb.Cols("id", "planet", "digit", "start_date", "end_date", "step_hours", "points", "created_at", "updated_at")
	sb.Values(trajectory.ID, trajectory.Planet, trajectory.Digit, trajectory.StartDate, trajectory.EndDate, trajectory.StepHours, trajectory.Points, trajectory.CreatedAt, trajectory.UpdatedAt)

	query, args := sb.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("Failed to create trajectory")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create trajectory")
	}

	log.WithFields(map[string]any{"id": trajectory.ID}).Info("Created trajectory")
	return trajectory, nil
}

// Get retrieves a trajectory by ID
func (r *Repository) Get(ctx context.Context, id string) (*models.Trajectory, error) {
	ctx, span := tracing.StartSpan(ctx, "trajectory.Repository.Get")
	defer span.End()

	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "planet", "digit", "start_date", "end_date", "step_hours", "points", "created_at", "updated_at", "deleted_at")
	sb.From("trajectories")
	sb.Where(
		sb.Equal("id", id),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	var trajectory models.Trajectory
	if err := r.db.GetContext(ctx, &trajectory, query, args...); err != nil {
		if err.Error() == "sql: no rows in result set" {
			return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("trajectory %s not found", id))
		}
		r.logger.WithContext(ctx).WithError(err).Error("Failed to get trajectory")
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get trajectory")
	}

	return &trajectory, nil
}

// List retrieves trajectories, optionally filtered by planet, newest first
func (r *Repository) List(ctx context.Context, planet *models.Planet, page, pageSize int) ([]models.Trajectory, int, error) {
	ctx, span := tracing.StartSpan(ctx, "trajectory.Repository.List")
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	// Count total
	countSb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	countSb.Select("COUNT(*)")
	countSb.From("trajectories")
	countWhere := []string{
		countSb.IsNull("deleted_at"),
	}
	if planet != nil {
		countWhere = append(countWhere, countSb.Equal("planet", *planet))
	}
	countSb.Where(countWhere...)

	countQuery, countArgs := countSb.Build()
	var totalCount int
	if err := r.db.GetContext(ctx, &totalCount, countQuery, countArgs...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to count trajectories")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to count trajectories")
	}

	// Fetch page
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "planet", "digit", "start_date", "end_date", "step_hours", "points", "created_at", "updated_at", "deleted_at")
	sb.From("trajectories")
	where := []string{
		sb.IsNull("deleted_at"),
	}
	if planet != nil {
		where = append(where, sb.Equal("planet", *planet))
	}
	sb.Where(where...)
	sb.OrderBy("created_at DESC")
	sb.Limit(pageSize).Offset(offset)

	query, args := sb.Build()
	var trajectories []models.Trajectory
	if err := r.db.SelectContext(ctx, &trajectories, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to list trajectories")
		return nil, 0, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list trajectories")
	}

	return trajectories, totalCount, nil
}

// Delete soft deletes a trajectory
func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, span := tracing.StartSpan(ctx, "trajectory.Repository.Delete")
	defer span.End()

	now := time.Now().UTC()
	sb := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	sb.Update("trajectories")
	sb.Set(sb.Assign("deleted_at", now))
	sb.Where(
		sb.Equal("id", id),
		sb.IsNull("deleted_at"),
	)

	query, args := sb.Build()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("Failed to delete trajectory")
		return httperror.NewHTTPError(http.StatusInternalServerError, "failed to delete trajectory")
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("trajectory %s not found", id))
	}

	r.logger.WithContext(ctx).WithFields(map[string]any{"id": id}).Info("Deleted trajectory")
	return nil
}
