package util

import (
	"errors"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/bilaad-labs/estate-pulse/pkg/config"
)

type (
	JWTClaims struct {
		Username string `json:"un"`
		jwt.RegisteredClaims
	}
	JWTMessage struct {
		Username string `json:"username"`
	}
)

// TokenManager signs and checks the bearer tokens gating the dashboard.
// Identity itself lives with the external provider; this is the thin wrapper.
type TokenManager struct {
	secretKey      string
	accessTokenTTL int
}

var (
	once     sync.Once
	tokenMgr *TokenManager
)

func GetTokenMgr() *TokenManager {
	once.Do(func() {
		authConfig := config.GetConfig().Auth
		tokenMgr = &TokenManager{
			secretKey:      authConfig.AccessTokenSecret,
			accessTokenTTL: authConfig.AccessTokenExpiryHour,
		}
	})
	return tokenMgr
}

func (tm *TokenManager) CreateToken(msg *JWTMessage) (string, error) {
	expiresAt := time.Now().Add(time.Hour * time.Duration(tm.accessTokenTTL))

	claims := &JWTClaims{
		Username: msg.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(tm.secretKey))
}

func (tm *TokenManager) CheckToken(tokenString string) (JWTMessage, error) {
	claims := &JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(tm.secretKey), nil
	})
	if err != nil {
		return JWTMessage{}, err
	}
	if !token.Valid {
		return JWTMessage{}, errors.New("invalid token")
	}
	return JWTMessage{Username: claims.Username}, nil
}
