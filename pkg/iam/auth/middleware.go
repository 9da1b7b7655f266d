package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// TokenMiddleware authenticates requests with bearer access tokens
type TokenMiddleware struct {
	tokens TokenService
}

// NewAuthMiddleware creates the bearer token middleware
func NewAuthMiddleware(tokens TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokens: tokens}
}

// Authenticate requires a valid token (currentUser)
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return ErrMissingToken()
		}

		ac, err := m.authenticate(token)
		if err != nil {
			return err
		}

		SetAuthContext(c, ac)
		return c.Next()
	}
}

// OptionalAuthenticate attaches the caller when a valid token is present (optionalCurrentUser).
// A malformed or expired token is still rejected so clients notice it.
func (m *TokenMiddleware) OptionalAuthenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := bearerToken(c)
		if !ok {
			return c.Next()
		}

		ac, err := m.authenticate(token)
		if err != nil {
			return err
		}

		SetAuthContext(c, ac)
		return c.Next()
	}
}

// RequireRole rejects callers whose role is not in roles (currentEmployer when roles = employer).
// Must run after Authenticate.
func (m *TokenMiddleware) RequireRole(roles ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}

		if !ac.HasRole(roles...) {
			return ErrRoleNotAllowed().
				WithDetail("role", ac.Role).
				WithDetail("required", roles)
		}

		return c.Next()
	}
}

// RequireScope rejects callers whose role does not grant scope. Must run after Authenticate.
func (m *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ac, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}

		if !ac.HasScope(scope) {
			return ErrRoleNotAllowed().
				WithDetail("role", ac.Role).
				WithDetail("required_scope", scope)
		}

		return c.Next()
	}
}

func (m *TokenMiddleware) authenticate(token string) (*AuthContext, error) {
	claims, err := m.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, err
	}
	return &AuthContext{UserID: claims.UserID, Role: claims.Role}, nil
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
