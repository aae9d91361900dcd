package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eduhub-platform/backend/internal/domain"
	"github.com/eduhub-platform/backend/internal/session"
	"github.com/eduhub-platform/backend/pkg/logger"
	"github.com/eduhub-platform/backend/pkg/response"
)

const identityKey = "identity"

// RequireAuth resolves the caller's identity before the handler runs and
// aborts with 401 when no valid credential is present. The handler never
// observes a partially authenticated request.
func RequireAuth(resolver *session.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, source, err := resolver.Resolve(c)
		if err != nil {
			abortUnauthenticated(c, err)
			return
		}
		c.Set(identityKey, identity)
		c.Set("credential_source", string(source))
		c.Next()
	}
}

// RequireRoles resolves the caller's identity and additionally requires
// membership in one of the given roles; aborts with 403 otherwise.
// One resolution per request, no retries.
func RequireRoles(resolver *session.Resolver, roles ...domain.Role) gin.HandlerFunc {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *gin.Context) {
		identity, source, err := resolver.Resolve(c)
		if err != nil {
			abortUnauthenticated(c, err)
			return
		}

		if _, ok := allowed[identity.Role]; !ok {
			c.AbortWithStatusJSON(response.Forbidden("You do not have permission to access this resource"))
			return
		}

		c.Set(identityKey, identity)
		c.Set("credential_source", string(source))
		c.Next()
	}
}

// GetIdentity returns the identity stored by RequireAuth or RequireRoles.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}

func abortUnauthenticated(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrTokenExpired):
		c.AbortWithStatusJSON(response.TokenExpired())
	case errors.Is(err, session.ErrAuthenticationRequired):
		c.AbortWithStatusJSON(response.Unauthorized("Authentication required"))
	default:
		// Session-store failure, not a credential problem.
		logger.Get().Error("failed to resolve session", zap.Error(err))
		c.AbortWithStatusJSON(response.InternalError())
	}
}
