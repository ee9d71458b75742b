package distance

import (
	"context"

	"googlemaps.github.io/maps"
)

type matrixClient interface {
	DistanceMatrix(ctx context.Context, r *maps.DistanceMatrixRequest) (*maps.DistanceMatrixResponse, error)
}
