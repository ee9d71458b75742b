package entities

// Identity - пользователь запроса, берется из bearer токена.
type Identity struct {
	UserID int64
	Email  string
	Role   UserRole
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
