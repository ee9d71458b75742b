package entities

import (
	"encoding/json"
	"time"
)

type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionSuccess TransactionStatus = "success"
	TransactionFailed  TransactionStatus = "failed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionSuccess || s == TransactionFailed
}

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

const DefaultPaymentMethod = PaymentMethodCard

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCard || m == PaymentMethodBankTransfer
}

const PaymentGatewayPaystack = "paystack"

type Payment struct {
	ID                   int64
	CustomerID           int64
	DeliveryID           int64
	Amount               float64
	Method               PaymentMethod
	Gateway              string
	TransactionReference string
	Status               TransactionStatus
	GatewayResponse      json.RawMessage
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type PaymentCreate struct {
	CustomerID           int64
	DeliveryID           int64
	Amount               float64
	Method               PaymentMethod
	Gateway              string
	TransactionReference string
	GatewayResponse      json.RawMessage
}

type PaymentInitialize struct {
	DeliveryID int64
	Amount     float64
	Method     PaymentMethod
}

type PaymentInitialization struct {
	Payment          *Payment
	AuthorizationURL string
	AccessCode       string
}

type PaymentFilter struct {
	Status     *TransactionStatus
	CustomerID *int64
	Page       Page
}

type GatewayCharge struct {
	Email       string
	AmountMinor int64
	Reference   string
	Metadata    map[string]any
}

type GatewayInitialization struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Raw              json.RawMessage
}

type GatewayVerification struct {
	Reference string
	Status    string
	Raw       json.RawMessage
}

func (v *GatewayVerification) Succeeded() bool {
	return v.Status == "success"
}

// InFlight - шлюз еще не вынес окончательного решения по транзакции.
func (v *GatewayVerification) InFlight() bool {
	switch v.Status {
	case "ongoing", "pending", "processing", "queued":
		return true
	default:
		return false
	}
}
