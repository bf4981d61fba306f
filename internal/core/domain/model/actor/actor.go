// Package actor models the authenticated parties acting on orders. The
// identity service that issues and validates tokens is external; this package
// only represents its output: a user identifier plus a marketplace role.
package actor

import (
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Role identifies which side of the marketplace an actor is on.
// Vendors buy raw materials; suppliers fulfill orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleVendor is the buyer-side actor purchasing materials.
	RoleVendor

	// RoleSupplier is the seller-side actor fulfilling orders.
	RoleSupplier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleVendor:   "vendor",
		RoleSupplier: "supplier",
	}
}

// RoleFromString parses a wire-format role name ("vendor" or "supplier").
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if str == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire-format role name.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects RoleUnknown and out-of-range values.
func (r Role) Validate() error {
	if r != RoleVendor && r != RoleSupplier {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Actor is an authenticated party: a user identifier and its role, as
// supplied by the identity service for each request.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor creates an actor from a validated identity.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the actor's user identifier.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's marketplace role.
func (a Actor) Role() Role {
	return a.role
}
