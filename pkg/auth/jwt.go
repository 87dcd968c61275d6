// Package auth issues and validates the JWT pair behind every storefront
// session: a short-lived access token sent as a bearer credential and a
// long-lived refresh token exchanged for new access tokens.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/vendora/config"
	"golang.org/x/crypto/bcrypt"
)

// Token lifetimes. The access token is deliberately short so the refresh
// path is exercised in normal operation.
const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

// Token type claims, so a refresh token can never be replayed as an access
// token or vice versa.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ErrWrongTokenType is returned when a token validates but carries the
// wrong type claim for the operation.
var ErrWrongTokenType = errors.New("auth: wrong token type")

// Claims holds the typed JWT payload.
type Claims struct {
	UserID    uint   `json:"user_id"`
	Admin     bool   `json:"admin"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// Pair is a freshly issued access/refresh token pair.
type Pair struct {
	Access  string
	Refresh string
}

// GeneratePair signs an access and a refresh token for the given user.
func GeneratePair(userID uint, admin bool) (Pair, error) {
	access, err := generate(userID, admin, TypeAccess, AccessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := generate(userID, admin, TypeRefresh, RefreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

// GenerateAccess signs a fresh access token, used by the refresh endpoint.
func GenerateAccess(userID uint, admin bool) (string, error) {
	return generate(userID, admin, TypeAccess, AccessTTL)
}

func generate(userID uint, admin bool, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Admin:     admin,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateAccess parses and validates an access token.
func ValidateAccess(t string) (*Claims, error) {
	return validate(t, TypeAccess)
}

// ValidateRefresh parses and validates a refresh token.
func ValidateRefresh(t string) (*Claims, error) {
	return validate(t, TypeRefresh)
}

func validate(t, wantType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.TokenType != wantType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
