package jwt

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrTokenType = errors.New("invalid token type")

// Claims 令牌载荷: sub / email / role
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// UserID 解析 sub
func (c *Claims) UserID() (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}

func GenerateToken(secret []byte, userID uint64, email, role, tokenType string, expire time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		Type:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, expectedType string, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.Type != expectedType {
		return nil, ErrTokenType
	}
	return claims, nil
}

// Issuer 持有 access / refresh 两套密钥
type Issuer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Pair 签发一对令牌
func (i *Issuer) Pair(userID uint64, email, role string) (access string, refresh string, err error) {
	access, err = GenerateToken(i.AccessSecret, userID, email, role, TypeAccess, i.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = GenerateToken(i.RefreshSecret, userID, email, role, TypeRefresh, i.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (i *Issuer) ParseAccess(token string) (*Claims, error) {
	return ParseToken(i.AccessSecret, TypeAccess, token)
}

func (i *Issuer) ParseRefresh(token string) (*Claims, error) {
	return ParseToken(i.RefreshSecret, TypeRefresh, token)
}
