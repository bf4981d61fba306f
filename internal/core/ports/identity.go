package ports

import (
	"context"

	"marketplace/internal/core/domain/model/actor"
)

// IdentityProvider verifies an opaque bearer token issued by the external
// identity service and returns the authenticated actor. The order core
// trusts this output; it never implements login or registration itself.
type IdentityProvider interface {
	Verify(ctx context.Context, token string) (actor.Actor, error)
}
