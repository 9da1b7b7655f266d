package auth

import (
	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// AuthContext is the authenticated caller of a request
type AuthContext struct {
	UserID kernel.UserID `json:"user_id"`
	Role   Role          `json:"role"`
}

// HasRole reports whether the caller has any of roles
func (a *AuthContext) HasRole(roles ...Role) bool {
	if a == nil {
		return false
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// HasScope reports whether the caller's role grants scope
func (a *AuthContext) HasScope(scope string) bool {
	return a != nil && a.Role.HasScope(scope)
}

// SetAuthContext stores the caller on the request
func SetAuthContext(c *fiber.Ctx, ac *AuthContext) {
	c.Locals(authContextKey, ac)
}

// GetAuthContext returns the caller stored by the middleware, if any
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	ac, ok := c.Locals(authContextKey).(*AuthContext)
	return ac, ok && ac != nil
}
