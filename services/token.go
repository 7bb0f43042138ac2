package services

import (
	"encoding/json"
	"strings"
	"time"

	"stayhub/config"
	"stayhub/errors"

	"github.com/dgrijalva/jwt-go"
)

type UserInfo struct {
	UserID uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// GenerateToken signs a 72h token carrying the user's id and role.
func GenerateToken(userID uint, role int) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{UserID: userID, Role: role},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(72 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetEnv("JWT_SECRET")))
}

// GetUserIDFromToken extracts userID and role from a bearer token.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims, err := decodeClaims(tokenString)
	if err != nil {
		return 0, 0, err
	}

	userInfo, ok := claims["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "No user info in token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "No user ID in token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "No role in token", nil)
	}

	return uint(userID), int(role), nil
}

// GetIDFromToken extracts only the userID.
func GetIDFromToken(tokenString string) (uint, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}

func decodeClaims(tokenString string) (jwt.MapClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Malformed token", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Cannot decode token", err)
	}

	claims := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Cannot parse token", err)
	}
	return claims, nil
}
