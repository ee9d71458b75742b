package distance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
	"swiftrider/internal/apperr"
	"swiftrider/internal/gateway"
	"swiftrider/internal/pkg/config"
)

const serviceName = "google-maps"

var ErrNoRoute = errors.New("no route between addresses")

// Calculator считает дорожное расстояние через Distance Matrix API.
type Calculator struct {
	client  matrixClient
	timeout time.Duration
}

func New(cfg *config.Maps, opts ...maps.ClientOption) (*Calculator, error) {
	client, err := maps.NewClient(append([]maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	return &Calculator{
		client:  client,
		timeout: cfg.Timeout,
	}, nil
}

// Distance возвращает расстояние в километрах.
func (c *Calculator) Distance(ctx context.Context, origin string, destination string) (float64, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.client.DistanceMatrix(ctx, &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	})
	if err != nil {
		gateway.Observe(serviceName, "distance_matrix", "error", start, 1)
		return 0, fmt.Errorf("maps distance matrix: %w: %w", apperr.ErrUpstreamUnavailable, err)
	}
	gateway.Observe(serviceName, "distance_matrix", "OK", start, 1)

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, ErrNoRoute
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("%w: %s", ErrNoRoute, element.Status)
	}

	return float64(element.Distance.Meters) / 1000, nil
}
