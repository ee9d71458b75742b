// Package access решает, может ли пользователь читать или менять доставку или платеж.
// Владение всегда берется из записи, прочитанной из базы, а не из запроса.
package access

import (
	"fmt"

	"swiftrider/internal/apperr"
	"swiftrider/internal/entities"
)

type Action uint8

const (
	ActionRead Action = iota + 1
	ActionWrite
)

func (a Action) String() string {
	switch a {
	case ActionRead:
		return "read"
	case ActionWrite:
		return "write"
	default:
		return "unknown"
	}
}

type capability uint8

const (
	readOwn capability = 1 << iota
	readAny
	writeOwn
	writeAny
)

var roleCapabilities = map[entities.UserRole]capability{
	entities.RoleCustomer: readOwn | writeOwn,
	entities.RoleRider:    readOwn | writeOwn,
	entities.RoleAdmin:    readOwn | readAny | writeOwn | writeAny,
}

var ErrForbidden = fmt.Errorf("not authorized to access this resource: %w", apperr.ErrForbidden)

// Resource - защищаемая запись.
type Resource interface {
	ownedBy(actor entities.Identity) bool
	// openFor - чтение без владения, например курьер смотрит pending доставку
	openFor(actor entities.Identity, action Action) bool
}

type DeliveryResource struct {
	Delivery *entities.Delivery
}

func (r DeliveryResource) ownedBy(actor entities.Identity) bool {
	switch actor.Role {
	case entities.RoleCustomer:
		return r.Delivery.CustomerID == actor.UserID
	case entities.RoleRider:
		return r.Delivery.IsAssignedTo(actor.UserID)
	default:
		return false
	}
}

func (r DeliveryResource) openFor(actor entities.Identity, action Action) bool {
	return action == ActionRead &&
		actor.Role == entities.RoleRider &&
		r.Delivery.Status == entities.DeliveryPending
}

type PaymentResource struct {
	Payment *entities.Payment
}

func (r PaymentResource) ownedBy(actor entities.Identity) bool {
	return actor.Role == entities.RoleCustomer && r.Payment.CustomerID == actor.UserID
}

func (r PaymentResource) openFor(entities.Identity, Action) bool {
	return false
}

type Gate struct{}

func New() *Gate {
	return &Gate{}
}

func (g *Gate) Authorize(actor entities.Identity, resource Resource, action Action) error {
	caps := roleCapabilities[actor.Role]

	var ownCap, anyCap capability
	switch action {
	case ActionRead:
		ownCap, anyCap = readOwn, readAny
	case ActionWrite:
		ownCap, anyCap = writeOwn, writeAny
	default:
		return ErrForbidden
	}

	if caps&anyCap != 0 {
		return nil
	}
	if caps&ownCap != 0 && resource.ownedBy(actor) {
		return nil
	}
	if resource.openFor(actor, action) {
		return nil
	}

	return ErrForbidden
}
