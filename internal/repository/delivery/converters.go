package delivery

import "swiftrider/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	delivery := &entities.Delivery{
		ID:              d.ID,
		CustomerID:      d.CustomerID,
		RiderID:         d.RiderID,
		PickupAddress:   d.PickupAddress,
		DeliveryAddress: d.DeliveryAddress,
		Package: entities.Package{
			Description: d.PackageDescription,
			WeightKg:    d.PackageWeightKg,
		},
		EstimatedCost: d.EstimatedCost,
		ActualCost:    d.ActualCost,
		DistanceKm:    d.DistanceKm,
		Status:        entities.DeliveryStatus(d.Status),
		PaymentStatus: entities.PaymentStatus(d.PaymentStatus),
		PickupTime:    d.PickupTime,
		DeliveryTime:  d.DeliveryTime,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}

	// габариты хранятся тремя колонками, все или ничего
	if d.PackageLength != nil && d.PackageWidth != nil && d.PackageHeight != nil {
		delivery.Package.Dimensions = &entities.Dimensions{
			Length: *d.PackageLength,
			Width:  *d.PackageWidth,
			Height: *d.PackageHeight,
		}
	}

	return delivery
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i := range deliveriesDB {
		result[i] = *ToDomain(&deliveriesDB[i])
	}
	return result
}
