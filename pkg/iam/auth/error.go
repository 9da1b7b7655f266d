package auth

import (
	"net/http"

	"github.com/Abraxas-365/jobboard/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("AUTH")

// Error codes
var (
	CodeMissingToken      = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Authentication required")
	CodeInvalidToken      = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthentication, http.StatusUnauthorized, "Invalid or expired token")
	CodeRoleNotAllowed    = ErrRegistry.Register("ROLE_NOT_ALLOWED", errx.TypeAuthorization, http.StatusForbidden, "Role is not allowed to perform this action")
	CodeTokenGeneration   = ErrRegistry.Register("TOKEN_GENERATION", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate token")
	CodeInvalidTokenClaim = ErrRegistry.Register("INVALID_TOKEN_CLAIM", errx.TypeAuthentication, http.StatusUnauthorized, "Token claims are invalid")
)

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrRoleNotAllowed() *errx.Error {
	return ErrRegistry.New(CodeRoleNotAllowed)
}

func ErrTokenGeneration() *errx.Error {
	return ErrRegistry.New(CodeTokenGeneration)
}

func ErrInvalidTokenClaim() *errx.Error {
	return ErrRegistry.New(CodeInvalidTokenClaim)
}
