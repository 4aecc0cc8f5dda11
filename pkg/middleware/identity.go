package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gymfit/internal/models/db_models"
)

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	AccountID uuid.UUID
	Role      string
}

func (i Identity) IsStaff() bool {
	return i.Role == db_models.RoleStaff
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// CurrentIdentity reads the identity stored by JWTAuthMiddleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	return IdentityFrom(c.Request.Context())
}
