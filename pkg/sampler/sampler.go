// Package sampler computes dignity trajectories by sampling the engine over
// a date range with a bounded worker pool.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/astro-fusion/numerology-white-paper/pkg/engine"
	"github.com/astro-fusion/numerology-white-paper/pkg/metrics"
	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

// DefaultStep is used when a request does not specify a sampling interval
const DefaultStep = 24 * time.Hour

// ErrInvalidRange marks requests whose date range cannot be sampled
var ErrInvalidRange = errors.New("invalid trajectory range")

// Request describes a trajectory to sample. Both endpoints are inclusive;
// the final sample lands on the last instant not after End.
type Request struct {
	Planet models.Planet
	Start  time.Time
	End    time.Time
	Step   time.Duration
}

// Sampler walks a date range and assesses a planet at each step
type Sampler struct {
	engine       *engine.Engine
	cache        Cache
	workers      int
	maxRangeDays int
	logger       ectologger.Logger
}

// New creates a sampler. Worker counts below one are raised to one.
func New(eng *engine.Engine, cache Cache, workers, maxRangeDays int, logger ectologger.Logger) *Sampler {
	if workers < 1 {
		workers = 1
	}

	return &Sampler{
		engine:       eng,
		cache:        cache,
		workers:      workers,
		maxRangeDays: maxRangeDays,
		logger:       logger,
	}
}

// Trajectory samples the planet across the range and returns points in
// chronological order. Any sample failure aborts the whole trajectory: a
// partial trajectory would silently misrepresent the range it claims to
// cover.
func (s *Sampler) Trajectory(ctx context.Context, req Request) ([]models.TrajectoryPoint, error) {
	ctx, span := tracing.StartSpan(ctx, "sampler.Sampler.Trajectory")
	defer span.End()

	instants, err := s.instants(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	points := make([]models.TrajectoryPoint, len(instants))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
		cancel()
	}

	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				point, err := s.sample(ctx, req.Planet, instants[idx])
				if err != nil {
					fail(err)
					return
				}
				points[idx] = point
			}
		}()
	}

	for idx := range instants {
		select {
		case <-ctx.Done():
		case jobs <- idx:
			continue
		}
		break
	}
	close(jobs)

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	metrics.RecordTrajectory(string(req.Planet), time.Since(start).Seconds())
	s.logger.WithContext(ctx).WithFields(map[string]any{
		"planet": req.Planet,
		"points": len(points),
	}).Debug("Computed trajectory")

	return points, nil
}

// sample assesses one instant, consulting the memoization cache first
func (s *Sampler) sample(ctx context.Context, planet models.Planet, instant time.Time) (models.TrajectoryPoint, error) {
	key := CacheKey(planet, instant)

	assessment, ok := cacheGet(ctx, s.cache, key)
	if !ok {
		var err error
		assessment, err = s.engine.AssessPlanet(ctx, planet, instant)
		if err != nil {
			return models.TrajectoryPoint{}, err
		}

		s.cache.Set(ctx, key, assessment)
		metrics.RecordSample(string(planet))
	}

	return models.TrajectoryPoint{
		Instant:        assessment.Instant,
		Longitude:      assessment.Longitude,
		Sign:           assessment.Sign,
		SignName:       assessment.SignName,
		Classification: assessment.Classification,
		Score:          assessment.Score,
		Support:        assessment.Support,
		Retrograde:     assessment.Retrograde,
	}, nil
}

// instants enumerates the sampling instants for a request
func (s *Sampler) instants(req Request) ([]time.Time, error) {
	if req.End.Before(req.Start) {
		return nil, fmt.Errorf("%w: start %s is after end %s", ErrInvalidRange, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))
	}

	step := req.Step
	if step <= 0 {
		step = DefaultStep
	}

	if s.maxRangeDays > 0 {
		limit := time.Duration(s.maxRangeDays) * 24 * time.Hour
		if req.End.Sub(req.Start) > limit {
			return nil, fmt.Errorf("%w: range exceeds the %d day limit", ErrInvalidRange, s.maxRangeDays)
		}
	}

	var instants []time.Time
	for t := req.Start; !t.After(req.End); t = t.Add(step) {
		instants = append(instants, t)
	}

	return instants, nil
}
