package payment

import (
	"encoding/json"

	"swiftrider/internal/entities"
)

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	payment := &entities.Payment{
		ID:                   p.ID,
		CustomerID:           p.CustomerID,
		DeliveryID:           p.DeliveryID,
		Amount:               p.Amount,
		Method:               entities.PaymentMethod(p.PaymentMethod),
		Gateway:              p.PaymentGateway,
		TransactionReference: p.TransactionReference,
		Status:               entities.TransactionStatus(p.Status),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	if len(p.GatewayResponse) > 0 {
		payment.GatewayResponse = json.RawMessage(p.GatewayResponse)
	}

	return payment
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i := range paymentsDB {
		result[i] = *ToDomain(&paymentsDB[i])
	}
	return result
}

// nullableJSON пустой ответ шлюза пишет как NULL.
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
