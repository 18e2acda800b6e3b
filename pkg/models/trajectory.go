package models

import (
	"encoding/json"
	"time"
)

// TrajectoryPoint is a single dated sample inside a trajectory
type TrajectoryPoint struct {
	Instant        time.Time             `json:"instant"`
	Longitude      float64               `json:"longitude"`
	Sign           ZodiacSign            `json:"sign"`
	SignName       string                `json:"sign_name"`
	Classification DignityClassification `json:"classification"`
	Score          float64               `json:"score"`
	Support        SupportLevel          `json:"support"`
	Retrograde     bool                  `json:"retrograde"`
}

// Trajectory is a persisted dignity time series for one planet
type Trajectory struct {
	ID        string          `json:"id" db:"id"`
	Planet    Planet          `json:"planet" db:"planet"`
	Digit     *int            `json:"digit,omitempty" db:"digit"`
	StartDate time.Time       `json:"start_date" db:"start_date"`
	EndDate   time.Time       `json:"end_date" db:"end_date"`
	StepHours int             `json:"step_hours" db:"step_hours"`
	Points    json.RawMessage `json:"points" db:"points"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time      `json:"deleted_at,omitempty" db:"deleted_at"`
}

// CreateTrajectoryRequest is the request to compute and persist a trajectory
type CreateTrajectoryRequest struct {
	Planet    Planet
	Digit     *int
	StartDate time.Time
	EndDate   time.Time
	StepHours int
	Points    json.RawMessage
}
