package entities

import "time"

type Location struct {
	Latitude  float64
	Longitude float64
}

type TrackingEntry struct {
	ID         int64
	DeliveryID int64
	RiderID    int64
	Location   Location
	Status     DeliveryStatus
	Note       *string
	CreatedAt  time.Time
}

type TrackingCreate struct {
	DeliveryID int64
	RiderID    int64
	Location   Location
	Status     DeliveryStatus
	Note       *string
}
