package auth

import (
	"time"

	"github.com/Abraxas-365/jobboard/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, role Role) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// TokenClaims is the validated content of an access token
type TokenClaims struct {
	UserID    kernel.UserID
	Role      Role
	ExpiresAt time.Time
}

// Claims are the JWT claims: subject is the user id
type Claims struct {
	jwt.RegisteredClaims
	Role Role `json:"role"`
}

// JWTService implements TokenService with HS256 tokens
type JWTService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService creates a token service
func NewJWTService(secret string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// GenerateAccessToken signs a token for userID with role
func (s *JWTService) GenerateAccessToken(userID kernel.UserID, role Role) (string, error) {
	now := s.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", ErrTokenGeneration().WithCause(err)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies a token
func (s *JWTService) ValidateAccessToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken().WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Subject == "" || !claims.Role.IsValid() {
		return nil, ErrInvalidTokenClaim()
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		UserID:    kernel.UserID(claims.Subject),
		Role:      claims.Role,
		ExpiresAt: expiresAt,
	}, nil
}
