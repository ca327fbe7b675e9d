package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MarketplaceURL string
	JWTSecret      string
}

type Gateway struct {
	config Config
	client HTTPClient
}

func NewGateway(config Config, client HTTPClient) *Gateway {
	return &Gateway{
		config: config,
		client: client,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// ProxyRequest forwards r to targetURL. Principal headers sent by the client
// are always dropped; principal, when set, replaces them.
func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string, principal *Principal) {
	log.Printf("[GATEWAY] PROXY: %s %s -> %s%s", r.Method, r.URL.Path, targetURL, r.URL.Path)

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.Printf("[GATEWAY] ERROR: Failed to create request: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}
	req.Header.Del(HeaderAppUserID)
	req.Header.Del(HeaderAppUserRole)
	req.Header.Del("Authorization")
	if principal != nil {
		req.Header.Set(HeaderAppUserID, strconv.Itoa(principal.AppUserID))
		req.Header.Set(HeaderAppUserRole, principal.Role)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[GATEWAY] ERROR: Failed to proxy to %s: %v", targetURL, err)
		http.Error(w, "marketplace unavailable", http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[GATEWAY] ERROR: Failed to copy response: %v", err)
	}
}

// RouteHandler authenticates /api requests and forwards them to the
// marketplace. A token, when present, must be valid even on public routes.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, "/api/") {
		http.Error(w, "route not found", http.StatusNotFound)
		return
	}

	principal, err := g.authenticate(r)
	switch {
	case errors.Is(err, ErrMissingToken):
		if !isPublic(r) {
			http.Error(w, "authentication required", http.StatusUnauthorized)
			return
		}
	case err != nil:
		log.Printf("[GATEWAY] rejected token for %s %s: %v", r.Method, r.URL.Path, err)
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	g.ProxyRequest(w, r, g.config.MarketplaceURL, principal)
}

func (g *Gateway) authenticate(r *http.Request) (*Principal, error) {
	token, err := bearerToken(r)
	if err != nil {
		return nil, err
	}
	principal, err := ValidateToken([]byte(g.config.JWTSecret), token)
	if err != nil {
		return nil, err
	}
	return &principal, nil
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
