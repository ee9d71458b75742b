package delivery

import "time"

type DeliveryDB struct {
	ID                 int64
	CustomerID         int64
	RiderID            *int64
	PickupAddress      string
	DeliveryAddress    string
	PackageDescription string
	PackageWeightKg    float64
	PackageLength      *float64
	PackageWidth       *float64
	PackageHeight      *float64
	EstimatedCost      float64
	ActualCost         *float64
	DistanceKm         *float64
	Status             string
	PaymentStatus      string
	PickupTime         *time.Time
	DeliveryTime       *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
