package user

import (
	"swiftrider/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	user := &entities.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Role:         entities.UserRole(u.Role),
		PasswordHash: u.PasswordHash,
		IsVerified:   u.IsVerified,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}

	switch user.Role {
	case entities.RoleCustomer:
		user.Customer = &entities.CustomerProfile{}
		if u.Address != nil {
			user.Customer.Address = *u.Address
		}
	case entities.RoleRider:
		user.Rider = &entities.RiderProfile{}
		if u.VehicleType != nil {
			user.Rider.VehicleType = entities.VehicleType(*u.VehicleType)
		}
		if u.LicensePlate != nil {
			user.Rider.LicensePlate = *u.LicensePlate
		}
		if u.IsAvailable != nil {
			user.Rider.IsAvailable = *u.IsAvailable
		}
	}

	return user
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i := range usersDB {
		result[i] = *ToDomain(&usersDB[i])
	}
	return result
}

// FromDomainCreate раскладывает профиль роли по nullable колонкам.
func FromDomainCreate(create *entities.UserCreate) *UserDB {
	if create == nil {
		return nil
	}

	userDB := &UserDB{
		Name:         create.Name,
		Email:        create.Email,
		Phone:        create.Phone,
		Role:         create.Role.String(),
		PasswordHash: create.PasswordHash,
		IsVerified:   create.IsVerified,
	}

	if create.Customer != nil {
		userDB.Address = &create.Customer.Address
	}
	if create.Rider != nil {
		vehicleType := create.Rider.VehicleType.String()
		userDB.VehicleType = &vehicleType
		userDB.LicensePlate = &create.Rider.LicensePlate
		userDB.IsAvailable = &create.Rider.IsAvailable
	}

	return userDB
}
