// Package middleware implements the request access gate: bearer credential
// extraction, token verification, identity resolution and role checks.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hackathon_backend/internal/feature/auth/domain/entity"
	"hackathon_backend/internal/feature/auth/usecase"
	jwtmw "hackathon_backend/internal/platform/jwt"
)

// ContextPrincipal is the gin context key under which the resolved principal
// is attached for the duration of one request.
const ContextPrincipal = "principal"

// IdentityResolver turns a verified token subject into a concrete principal.
// Following Go convention: interfaces are defined by the consumer (middleware),
// not the provider (usecase).
type IdentityResolver interface {
	Resolve(ctx context.Context, subject string) (*entity.Principal, error)
}

// AccessGate authenticates requests and enforces role-based access.
// Verifier and resolver are injected at construction; the gate holds no
// mutable state and is safe for concurrent use.
type AccessGate struct {
	verifier jwtmw.Verifier
	resolver IdentityResolver
}

// NewAccessGate creates a new AccessGate.
func NewAccessGate(verifier jwtmw.Verifier, resolver IdentityResolver) *AccessGate {
	return &AccessGate{verifier: verifier, resolver: resolver}
}

// Authenticate returns a middleware that extracts the bearer token, verifies
// it, resolves the principal and attaches it to the request context. Any
// failure short-circuits with a JSON error.
func (g *AccessGate) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, no token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		claims, err := g.verifier.Verify(tokenStr)
		if err != nil {
			if errors.Is(err, jwtmw.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		principal, err := g.resolver.Resolve(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user no longer exists"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// AdminOnly returns a middleware requiring an attached admin principal.
// It must run after Authenticate.
func (g *AccessGate) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, no token"})
			return
		}
		if !principal.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// PrincipalFrom returns the principal attached by Authenticate, if any.
func PrincipalFrom(c *gin.Context) (*entity.Principal, bool) {
	v, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil, false
	}
	principal, ok := v.(*entity.Principal)
	return principal, ok
}
