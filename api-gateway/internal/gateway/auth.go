package gateway

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	HeaderAppUserID   = "X-AppUser-ID"
	HeaderAppUserRole = "X-AppUser-Role"

	tokenTTL = 24 * time.Hour
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type Principal struct {
	AppUserID int
	Role      string
}

// GenerateToken signs an HS256 token carrying the appuser id and role.
func GenerateToken(secret []byte, appuserID int, role string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("jwt secret not set")
	}
	claims := jwt.MapClaims{
		"userID": strconv.Itoa(appuserID),
		"role":   role,
		"exp":    time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func ValidateToken(secret []byte, tokenString string) (Principal, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidToken
	}
	rawID, _ := claims["userID"].(string)
	id, err := strconv.Atoi(rawID)
	if err != nil || id <= 0 {
		return Principal{}, ErrInvalidToken
	}
	role, _ := claims["role"].(string)

	return Principal{AppUserID: id, Role: strings.ToLower(role)}, nil
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrInvalidToken
	}
	return strings.TrimSpace(token), nil
}

// isPublic reports whether a request may reach the marketplace anonymously:
// catalog reads and order validation.
func isPublic(r *http.Request) bool {
	path := r.URL.Path
	switch r.Method {
	case http.MethodGet:
		return strings.HasPrefix(path, "/api/restaurants/") &&
			path != "/api/restaurants/mine" &&
			!strings.HasSuffix(path, "/option-categories")
	case http.MethodPost:
		return path == "/api/orders/validate"
	}
	return false
}
