package payment

import "time"

type PaymentDB struct {
	ID                   int64
	CustomerID           int64
	DeliveryID           int64
	Amount               float64
	PaymentMethod        string
	PaymentGateway       string
	TransactionReference string
	Status               string
	GatewayResponse      []byte
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
