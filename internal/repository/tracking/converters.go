package tracking

import "swiftrider/internal/entities"

func ToDomain(t *TrackingEntryDB) *entities.TrackingEntry {
	if t == nil {
		return nil
	}
	return &entities.TrackingEntry{
		ID:         t.ID,
		DeliveryID: t.DeliveryID,
		RiderID:    t.RiderID,
		Location: entities.Location{
			Latitude:  t.Latitude,
			Longitude: t.Longitude,
		},
		Status:    entities.DeliveryStatus(t.Status),
		Note:      t.Note,
		CreatedAt: t.CreatedAt,
	}
}
