// Package identity verifies bearer tokens issued by the external identity
// service. Login, registration, and token issuance live elsewhere; this
// adapter only checks the signature and maps claims to an actor.
package identity

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier implements ports.IdentityProvider for HMAC-signed tokens.
// The signing secret is shared with the identity service.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a verifier for the given shared secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// actorClaims is the token payload: the subject carries the user id, and the
// role claim carries the marketplace role.
type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Verify parses and validates a bearer token and returns the authenticated
// actor. Any defect (bad signature, expiry, malformed claims) comes back as
// errs.NotAuthorizedError.
func (v *JWTVerifier) Verify(_ context.Context, token string) (actor.Actor, error) {
	parsed, err := jwt.ParseWithClaims(token, &actorClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("anonymous", "access the marketplace", err)
	}

	claims, ok := parsed.Claims.(*actorClaims)
	if !ok {
		return actor.Actor{}, errs.NewNotAuthorizedError("anonymous", "access the marketplace")
	}

	userID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("anonymous", "access the marketplace", err)
	}

	role, err := actor.RoleFromString(claims.Role)
	if err != nil {
		return actor.Actor{}, errs.NewNotAuthorizedErrorWithCause("anonymous", "access the marketplace", err)
	}

	return actor.NewActor(userID, role)
}
