package entities

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleRider    UserRole = "rider"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleCustomer, RoleRider, RoleAdmin:
		return true
	default:
		return false
	}
}

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "Motorcycle"
	VehicleBicycle    VehicleType = "Bicycle"
	VehicleCar        VehicleType = "Car"
	VehicleVan        VehicleType = "Van"
	VehicleTruck      VehicleType = "Truck"
)

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleMotorcycle, VehicleBicycle, VehicleCar, VehicleVan, VehicleTruck:
		return true
	default:
		return false
	}
}

// CustomerProfile заполнен только у RoleCustomer.
type CustomerProfile struct {
	Address string
}

// RiderProfile заполнен только у RoleRider.
type RiderProfile struct {
	VehicleType  VehicleType
	LicensePlate string
	IsAvailable  bool
}

type User struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Role         UserRole
	PasswordHash string
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Customer *CustomerProfile
	Rider    *RiderProfile
}

func (u *User) IsAvailableRider() bool {
	return u.Role == RoleRider && u.Rider != nil && u.Rider.IsAvailable
}

type UserRegistration struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     UserRole
	Customer *CustomerProfile
	Rider    *RiderProfile
}

type UserCreate struct {
	Name         string
	Email        string
	Phone        string
	Role         UserRole
	PasswordHash string
	IsVerified   bool
	Customer     *CustomerProfile
	Rider        *RiderProfile
}

type UserModify struct {
	ID          *int64
	IsVerified  *bool
	IsAvailable *bool
}

type UserFilter struct {
	Role *UserRole
	Page Page
}

type AuthResult struct {
	Token string
	User  *User
}
