package entities

import "time"

type DeliveryStatus string

const (
	DeliveryPending    DeliveryStatus = "pending"
	DeliveryAccepted   DeliveryStatus = "accepted"
	DeliveryInProgress DeliveryStatus = "in-progress"
	DeliveryCompleted  DeliveryStatus = "completed"
	DeliveryCancelled  DeliveryStatus = "cancelled"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryPending, DeliveryAccepted, DeliveryInProgress, DeliveryCompleted, DeliveryCancelled:
		return true
	default:
		return false
	}
}

func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryCompleted || s == DeliveryCancelled
}

// IsActive - курьер сейчас занят этой доставкой.
func (s DeliveryStatus) IsActive() bool {
	return s == DeliveryAccepted || s == DeliveryInProgress
}

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

type Package struct {
	Description string
	WeightKg    float64
	Dimensions  *Dimensions
}

type Delivery struct {
	ID              int64
	CustomerID      int64
	RiderID         *int64
	PickupAddress   string
	DeliveryAddress string
	Package         Package
	EstimatedCost   float64
	ActualCost      *float64
	DistanceKm      *float64
	Status          DeliveryStatus
	PaymentStatus   PaymentStatus
	PickupTime      *time.Time
	DeliveryTime    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (d *Delivery) IsAssignedTo(riderID int64) bool {
	return d.RiderID != nil && *d.RiderID == riderID
}

type DeliveryCreate struct {
	CustomerID      int64
	PickupAddress   string
	DeliveryAddress string
	Package         Package
	EstimatedCost   float64
	DistanceKm      *float64
}

// DeliveryTransition применяется только если в базе все еще статус From.
type DeliveryTransition struct {
	ID           int64
	From         DeliveryStatus
	To           DeliveryStatus
	RiderID      *int64
	PickupTime   *time.Time
	DeliveryTime *time.Time
}

type DeliveryFilter struct {
	Status     *DeliveryStatus
	CustomerID *int64
	RiderID    *int64
	Page       Page
}

type DeliveryAdminUpdate struct {
	ActualCost *float64
	Status     *DeliveryStatus
}
