package location

import "time"

type LocationCacheDB struct {
	ID         int64     `json:"id"`
	DeliveryID int64     `json:"delivery_id"`
	RiderID    int64     `json:"rider_id"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Status     string    `json:"status"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
