// File: /services/token_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and verifies the access/refresh JWT pair. Both are
// HS256-signed with the same secret and distinguished by a type claim, so
// a refresh token can never pass for an access token.
type TokenService struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

type TokenClaims struct {
	UserID   string
	Username string
	Type     string
}

func (ts *TokenService) IssuePair(userID, username string) (*TokenPair, error) {
	access, err := ts.issue(userID, username, TokenTypeAccess, ts.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := ts.issue(userID, username, TokenTypeRefresh, ts.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (ts *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := ts.Verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}
	return ts.issue(claims.UserID, claims.Username, TokenTypeAccess, ts.accessTTL)
}

func (ts *TokenService) Verify(tokenString, wantType string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(ts.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != wantType {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	username, _ := claims["username"].(string)
	if userID == "" {
		return nil, ErrInvalidToken
	}

	return &TokenClaims{
		UserID:   userID,
		Username: username,
		Type:     tokenType,
	}, nil
}

func (ts *TokenService) issue(userID, username, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"type":     tokenType,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ts.secret))
}
