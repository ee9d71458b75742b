package dto

import "swiftrider/internal/entities"

func FromUser(u *entities.User) User {
	res := User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Phone:      u.Phone,
		Role:       u.Role.String(),
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}

	if u.Customer != nil {
		address := u.Customer.Address
		res.Address = &address
	}
	if u.Rider != nil {
		vehicle := u.Rider.VehicleType.String()
		plate := u.Rider.LicensePlate
		available := u.Rider.IsAvailable
		res.VehicleType = &vehicle
		res.LicensePlate = &plate
		res.IsAvailable = &available
	}

	return res
}

func FromAuthResult(r *entities.AuthResult) AuthResponse {
	return AuthResponse{
		Token: r.Token,
		User:  FromUser(r.User),
	}
}

// ToRegistration собирает профиль по роли; для неизвестной роли профиля нет.
func (r RegisterRequest) ToRegistration() entities.UserRegistration {
	reg := entities.UserRegistration{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
		Role:     entities.UserRole(r.Role),
	}

	switch reg.Role {
	case entities.RoleCustomer:
		reg.Customer = &entities.CustomerProfile{Address: r.Address}
	case entities.RoleRider:
		reg.Rider = &entities.RiderProfile{
			VehicleType:  entities.VehicleType(r.VehicleType),
			LicensePlate: r.LicensePlate,
		}
	}

	return reg
}

func FromDelivery(d *entities.Delivery) Delivery {
	res := Delivery{
		ID:                 d.ID,
		CustomerID:         d.CustomerID,
		RiderID:            d.RiderID,
		PickupAddress:      d.PickupAddress,
		DeliveryAddress:    d.DeliveryAddress,
		PackageDescription: d.Package.Description,
		PackageWeight:      d.Package.WeightKg,
		EstimatedCost:      d.EstimatedCost,
		ActualCost:         d.ActualCost,
		Distance:           d.DistanceKm,
		Status:             d.Status.String(),
		PaymentStatus:      d.PaymentStatus.String(),
		PickupTime:         d.PickupTime,
		DeliveryTime:       d.DeliveryTime,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}

	if dim := d.Package.Dimensions; dim != nil {
		res.PackageDimensions = &Dimensions{
			Length: dim.Length,
			Width:  dim.Width,
			Height: dim.Height,
		}
	}

	return res
}

func (r DeliveryCreateRequest) ToCreate() entities.DeliveryCreate {
	create := entities.DeliveryCreate{
		PickupAddress:   r.PickupAddress,
		DeliveryAddress: r.DeliveryAddress,
		Package: entities.Package{
			Description: r.PackageDescription,
			WeightKg:    r.PackageWeight,
		},
		EstimatedCost: r.EstimatedCost,
	}

	if dim := r.PackageDimensions; dim != nil {
		create.Package.Dimensions = &entities.Dimensions{
			Length: dim.Length,
			Width:  dim.Width,
			Height: dim.Height,
		}
	}

	return create
}

func (r DeliveryUpdateRequest) ToAdminUpdate() entities.DeliveryAdminUpdate {
	update := entities.DeliveryAdminUpdate{ActualCost: r.ActualCost}
	if r.Status != nil {
		status := entities.DeliveryStatus(*r.Status)
		update.Status = &status
	}
	return update
}

func FromPayment(p *entities.Payment) Payment {
	return Payment{
		ID:                   p.ID,
		CustomerID:           p.CustomerID,
		DeliveryID:           p.DeliveryID,
		Amount:               p.Amount,
		PaymentMethod:        p.Method.String(),
		PaymentGateway:       p.Gateway,
		TransactionReference: p.TransactionReference,
		Status:               p.Status.String(),
		GatewayResponse:      p.GatewayResponse,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func FromPaymentInitialization(i *entities.PaymentInitialization) PaymentInitializeResponse {
	return PaymentInitializeResponse{
		Payment:          FromPayment(i.Payment),
		AuthorizationURL: i.AuthorizationURL,
		AccessCode:       i.AccessCode,
	}
}

func FromTrackingEntry(e *entities.TrackingEntry) TrackingEntry {
	return TrackingEntry{
		ID:         e.ID,
		DeliveryID: e.DeliveryID,
		RiderID:    e.RiderID,
		Latitude:   e.Location.Latitude,
		Longitude:  e.Location.Longitude,
		Status:     e.Status.String(),
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}

func FromTrackingEntries(entries []entities.TrackingEntry) []TrackingEntry {
	res := make([]TrackingEntry, 0, len(entries))
	for i := range entries {
		res = append(res, FromTrackingEntry(&entries[i]))
	}
	return res
}

func FromAnalytics(r *entities.AnalyticsReport) Analytics {
	return Analytics{
		Deliveries: DeliveryCounts{
			Total:      r.Deliveries.Total,
			Pending:    r.Deliveries.Pending,
			Accepted:   r.Deliveries.Accepted,
			InProgress: r.Deliveries.InProgress,
			Completed:  r.Deliveries.Completed,
			Cancelled:  r.Deliveries.Cancelled,
		},
		Revenue: Revenue{
			Total:                  r.Revenue.Total,
			AverageOrderValue:      r.Revenue.AverageOrderValue,
			SuccessfulTransactions: r.Revenue.SuccessfulTransactions,
		},
		Users: UserCounts{
			Customers:       r.Users.Customers,
			Riders:          r.Users.Riders,
			AvailableRiders: r.Users.AvailableRiders,
		},
		Performance: Performance{
			AverageDeliveryTime: r.Performance.AverageDeliveryMinutes,
		},
	}
}

// FromList переводит страницу сущностей, convert получает указатель на элемент.
func FromList[E, D any](list *entities.List[E], convert func(*E) D) Page[D] {
	items := make([]D, 0, len(list.Items))
	for i := range list.Items {
		items = append(items, convert(&list.Items[i]))
	}

	return Page[D]{
		Items: items,
		Pagination: Pagination{
			Page:  list.Pagination.Page,
			Limit: list.Pagination.Limit,
			Total: list.Pagination.Total,
			Pages: list.Pagination.Pages,
		},
	}
}
