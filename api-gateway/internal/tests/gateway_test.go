package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"foodmarket/api-gateway/internal/gateway"
	"foodmarket/api-gateway/internal/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newTestGateway(client gateway.HTTPClient) *gateway.Gateway {
	return gateway.NewGateway(gateway.Config{MarketplaceURL: "http://marketplace", JWTSecret: testSecret}, client)
}

func signedToken(t *testing.T, appuserID int, role string) string {
	t.Helper()
	token, err := gateway.GenerateToken([]byte(testSecret), appuserID, role)
	require.NoError(t, err)
	return token
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := newTestGateway(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Authentication(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		auth      func(t *testing.T) string
		wantCode  int
		wantProxy bool
	}{
		{
			name:      "public menu read",
			method:    http.MethodGet,
			path:      "/api/restaurants/burger-bar/menu",
			wantCode:  http.StatusOK,
			wantProxy: true,
		},
		{
			name:      "public order validation",
			method:    http.MethodPost,
			path:      "/api/orders/validate",
			wantCode:  http.StatusOK,
			wantProxy: true,
		},
		{
			name:     "order creation needs a token",
			method:   http.MethodPost,
			path:     "/api/orders",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "own restaurants need a token",
			method:   http.MethodGet,
			path:     "/api/restaurants/mine",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "option category admin list needs a token",
			method:   http.MethodGet,
			path:     "/api/restaurants/3/option-categories",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token on public route",
			method:   http.MethodGet,
			path:     "/api/restaurants/search",
			auth:     func(t *testing.T) string { return "Bearer not-a-jwt" },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "token signed with another secret",
			method:   http.MethodPost,
			path:     "/api/orders",
			auth:     otherSecretToken,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not a bearer header",
			method:   http.MethodPost,
			path:     "/api/orders",
			auth:     func(t *testing.T) string { return "Basic dXNlcjpwYXNz" },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "valid token",
			method:    http.MethodPost,
			path:      "/api/orders",
			auth:      func(t *testing.T) string { return "Bearer " + signedToken(t, 7, "customer") },
			wantCode:  http.StatusOK,
			wantProxy: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			if testCase.wantProxy {
				mockClient.On("Do", mock.Anything).Return(okResponse(`{}`), nil).Once()
			}

			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(`{}`))
			if testCase.auth != nil {
				req.Header.Set("Authorization", testCase.auth(t))
			}
			rr := httptest.NewRecorder()

			newTestGateway(mockClient).RouteHandler(rr, req)

			assert.Equal(t, testCase.wantCode, rr.Code)
		})
	}
}

func otherSecretToken(t *testing.T) string {
	t.Helper()
	token, err := gateway.GenerateToken([]byte("someone-else"), 7, "customer")
	require.NoError(t, err)
	return "Bearer " + token
}

func TestGateway_RouteHandler_SetsPrincipalHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://marketplace/api/orders/42/cancel?x=1" &&
			req.Header.Get(gateway.HeaderAppUserID) == "7" &&
			req.Header.Get(gateway.HeaderAppUserRole) == "customer" &&
			req.Header.Get("Authorization") == ""
	})).Return(okResponse(`{"status":"Cancelled"}`), nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/orders/42/cancel?x=1", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, 7, "Customer"))
	req.Header.Set(gateway.HeaderAppUserID, "1")
	req.Header.Set(gateway.HeaderAppUserRole, "merchant")
	rr := httptest.NewRecorder()

	newTestGateway(mockClient).RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Cancelled")
}

func TestGateway_RouteHandler_StripsSpoofedHeadersOnPublicRoutes(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get(gateway.HeaderAppUserID) == "" && req.Header.Get(gateway.HeaderAppUserRole) == ""
	})).Return(okResponse(`[]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/nearby?lat=1&lng=2", nil)
	req.Header.Set(gateway.HeaderAppUserID, "1")
	req.Header.Set(gateway.HeaderAppUserRole, "merchant")
	rr := httptest.NewRecorder()

	newTestGateway(mockClient).RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/search?q=pizza", nil)
	rr := httptest.NewRecorder()

	newTestGateway(mockClient).RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_RouteHandler_NonAPI(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/index.html", nil)
	rr := httptest.NewRecorder()

	newTestGateway(nil).RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestValidateToken(t *testing.T) {
	principal, err := gateway.ValidateToken([]byte(testSecret), signedToken(t, 9, "merchant"))
	require.NoError(t, err)
	assert.Equal(t, gateway.Principal{AppUserID: 9, Role: "merchant"}, principal)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userID": "9",
		"role":   "merchant",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})
	raw, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = gateway.ValidateToken([]byte(testSecret), raw)
	assert.ErrorIs(t, err, gateway.ErrInvalidToken)

	noID := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "merchant"})
	raw, err = noID.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = gateway.ValidateToken([]byte(testSecret), raw)
	assert.ErrorIs(t, err, gateway.ErrInvalidToken)
}
