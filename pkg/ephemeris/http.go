package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/astro-fusion/numerology-white-paper/pkg/models"
	"github.com/astro-fusion/numerology-white-paper/pkg/tracing"
)

// HTTPProviderConfig configures the ephemeris service client
type HTTPProviderConfig struct {
	BaseURL        string
	Timeout        time.Duration
	AyanamsaSystem string
}

// HTTPProvider queries an external ephemeris service for sidereal positions.
// The service owns the Swiss Ephemeris data and the ayanamsa correction; this
// client only transports.
type HTTPProvider struct {
	baseURL  string
	ayanamsa string
	client   *http.Client
	logger   ectologger.Logger
}

// NewHTTPProvider creates an ephemeris service client
func NewHTTPProvider(cfg HTTPProviderConfig, logger ectologger.Logger) *HTTPProvider {
	return &HTTPProvider{
		baseURL:  cfg.BaseURL,
		ayanamsa: cfg.AyanamsaSystem,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
	}
}

type positionResponse struct {
	Longitude      float64 `json:"longitude"`
	SpeedLongitude float64 `json:"speed_longitude"`
}

// Position fetches the sidereal position for a planet at an instant
func (p *HTTPProvider) Position(ctx context.Context, planet models.Planet, instant time.Time) (Position, error) {
	ctx, span := tracing.StartSpan(ctx, "ephemeris.HTTPProvider.Position")
	defer span.End()

	query := url.Values{}
	query.Set("planet", string(planet))
	query.Set("julian_day", fmt.Sprintf("%f", JulianDay(instant)))
	query.Set("ayanamsa", p.ayanamsa)

	endpoint := fmt.Sprintf("%s/api/v1/positions?%s", p.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Position{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.WithContext(ctx).WithError(err).Error("Ephemeris request failed")
		return Position{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("ephemeris service returned status %d", resp.StatusCode)
	}

	var body positionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Position{}, err
	}

	return Position{Longitude: body.Longitude, SpeedLongitude: body.SpeedLongitude}, nil
}
