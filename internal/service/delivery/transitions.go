package delivery

import (
	"slices"

	"swiftrider/internal/entities"
)

// allowedTransitions - граф статусов доставки.
// В accepted доставка попадает только через Accept.
var allowedTransitions = map[entities.DeliveryStatus][]entities.DeliveryStatus{
	entities.DeliveryPending:    {entities.DeliveryAccepted},
	entities.DeliveryAccepted:   {entities.DeliveryInProgress, entities.DeliveryCancelled},
	entities.DeliveryInProgress: {entities.DeliveryCompleted, entities.DeliveryCancelled},
}

func canTransition(from, to entities.DeliveryStatus) bool {
	return slices.Contains(allowedTransitions[from], to)
}
