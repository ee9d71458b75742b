package tracking

import "time"

type TrackingEntryDB struct {
	ID         int64
	DeliveryID int64
	RiderID    int64
	Latitude   float64
	Longitude  float64
	Status     string
	Note       *string
	CreatedAt  time.Time
}
