package user

import "time"

type UserDB struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Role         string
	PasswordHash string
	IsVerified   bool
	Address      *string
	VehicleType  *string
	LicensePlate *string
	IsAvailable  *bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
