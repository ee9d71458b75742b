// Package dto - JSON представление запросов и ответов REST API.
package dto

import (
	"encoding/json"
	"time"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"isVerified"`
	Address      *string   `json:"address,omitempty"`
	VehicleType  *string   `json:"vehicleType,omitempty"`
	LicensePlate *string   `json:"licensePlate,omitempty"`
	IsAvailable  *bool     `json:"isAvailable,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	Role         string `json:"role"`
	Address      string `json:"address"`
	VehicleType  string `json:"vehicleType"`
	LicensePlate string `json:"licensePlate"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable"`
}

type UserUpdateRequest struct {
	IsVerified  *bool `json:"isVerified"`
	IsAvailable *bool `json:"isAvailable"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Delivery struct {
	ID                 int64       `json:"id"`
	CustomerID         int64       `json:"customerId"`
	RiderID            *int64      `json:"riderId"`
	PickupAddress      string      `json:"pickupAddress"`
	DeliveryAddress    string      `json:"deliveryAddress"`
	PackageDescription string      `json:"packageDescription"`
	PackageWeight      float64     `json:"packageWeight"`
	PackageDimensions  *Dimensions `json:"packageDimensions,omitempty"`
	EstimatedCost      float64     `json:"estimatedCost"`
	ActualCost         *float64    `json:"actualCost,omitempty"`
	Distance           *float64    `json:"distance,omitempty"`
	Status             string      `json:"status"`
	PaymentStatus      string      `json:"paymentStatus"`
	PickupTime         *time.Time  `json:"pickupTime,omitempty"`
	DeliveryTime       *time.Time  `json:"deliveryTime,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

type DeliveryCreateRequest struct {
	PickupAddress      string      `json:"pickupAddress"`
	DeliveryAddress    string      `json:"deliveryAddress"`
	PackageDescription string      `json:"packageDescription"`
	PackageWeight      float64     `json:"packageWeight"`
	PackageDimensions  *Dimensions `json:"packageDimensions"`
	EstimatedCost      float64     `json:"estimatedCost"`
}

type StatusRequest struct {
	Status string `json:"status"`
}

type DeliveryUpdateRequest struct {
	ActualCost *float64 `json:"actualCost"`
	Status     *string  `json:"status"`
}

type Payment struct {
	ID                   int64           `json:"id"`
	CustomerID           int64           `json:"customerId"`
	DeliveryID           int64           `json:"deliveryId"`
	Amount               float64         `json:"amount"`
	PaymentMethod        string          `json:"paymentMethod"`
	PaymentGateway       string          `json:"paymentGateway"`
	TransactionReference string          `json:"transactionReference"`
	Status               string          `json:"status"`
	GatewayResponse      json.RawMessage `json:"gatewayResponse,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

type PaymentInitializeRequest struct {
	DeliveryID    int64   `json:"deliveryId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
}

type PaymentInitializeResponse struct {
	Payment          Payment `json:"payment"`
	AuthorizationURL string  `json:"authorizationUrl"`
	AccessCode       string  `json:"accessCode"`
}

type TrackingEntry struct {
	ID         int64     `json:"id"`
	DeliveryID int64     `json:"deliveryId"`
	RiderID    int64     `json:"riderId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Status     string    `json:"status"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TrackingLocationRequest struct {
	DeliveryID int64    `json:"deliveryId"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Note       *string  `json:"note"`
}

type DeliveryCounts struct {
	Total      int64 `json:"total"`
	Pending    int64 `json:"pending"`
	Accepted   int64 `json:"accepted"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Cancelled  int64 `json:"cancelled"`
}

type Revenue struct {
	Total                  float64 `json:"total"`
	AverageOrderValue      float64 `json:"averageOrderValue"`
	SuccessfulTransactions int64   `json:"successfulTransactions"`
}

type UserCounts struct {
	Customers       int64 `json:"customers"`
	Riders          int64 `json:"riders"`
	AvailableRiders int64 `json:"availableRiders"`
}

type Performance struct {
	AverageDeliveryTime float64 `json:"averageDeliveryTime"`
}

type Analytics struct {
	Deliveries  DeliveryCounts `json:"deliveries"`
	Revenue     Revenue        `json:"revenue"`
	Users       UserCounts     `json:"users"`
	Performance Performance    `json:"performance"`
}
