package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

// Identity is the verified subject carried by a session token.
type Identity struct {
	UserID   int
	Username string
}

// TokenService issues and verifies HS256-signed session tokens. The secret
// and clock are explicit so tests can pin both; validity is purely a function
// of signature and expiry — nothing is persisted and nothing can be revoked.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the time source. Tests use this to check expiration
// deterministically.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) Issue(userID int, username string) (string, error) {
	issuedAt := s.now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      issuedAt.Unix(),
		"exp":      issuedAt.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) Verify(tokenStr string) (Identity, error) {
	token, err := jwt.Parse(tokenStr,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Identity{}, ErrTokenExpired
		}
		return Identity{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Identity{}, ErrTokenInvalid
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return Identity{}, ErrTokenInvalid
	}
	username, _ := claims["username"].(string)

	return Identity{UserID: int(sub), Username: username}, nil
}
