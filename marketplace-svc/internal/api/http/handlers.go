package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"foodmarket/marketplace-svc/internal/domain"
	"foodmarket/marketplace-svc/internal/service"

	"github.com/gorilla/mux"
)

// Principal headers are set by the api-gateway after it has verified the
// caller's token. Clients never set them directly.
const (
	HeaderAppUserID   = "X-AppUser-ID"
	HeaderAppUserRole = "X-AppUser-Role"

	RoleCustomer = "customer"
	RoleMerchant = "merchant"

	maxUploadBytes = 10 << 20
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Orders      service.OrderServiceInterface
	Pricer      service.PricerInterface
	Authz       service.AuthorizerInterface
}

func NewHandler(restSvc service.RestaurantServiceInterface, menuSvc service.MenuServiceInterface, orderSvc service.OrderServiceInterface, pricer service.PricerInterface, authz service.AuthorizerInterface) *Handler {
	return &Handler{
		Restaurants: restSvc,
		Menu:        menuSvc,
		Orders:      orderSvc,
		Pricer:      pricer,
		Authz:       authz,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/restaurants", h.createRestaurant).Methods("POST")
	r.HandleFunc("/api/restaurants/search", h.searchRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/nearby", h.nearbyRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/prepop", h.queryPrepop).Methods("GET")
	r.HandleFunc("/api/restaurants/mine", h.myRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/categories", h.createCategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/option-categories", h.createOptionCategory).Methods("POST")
	r.HandleFunc("/api/restaurants/{id:[0-9]+}/option-categories", h.getOptionCategories).Methods("GET")
	r.HandleFunc("/api/restaurants/{slug}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{slug}/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/api/restaurants/{slug}/menu/{item}/options", h.getOptions).Methods("GET")

	r.HandleFunc("/api/categories/{id:[0-9]+}", h.updateCategory).Methods("PUT")
	r.HandleFunc("/api/categories/{id:[0-9]+}/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/items/{id:[0-9]+}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/api/items/{id:[0-9]+}/option-categories/{optionCategoryId:[0-9]+}", h.attachOptionCategory).Methods("POST")
	r.HandleFunc("/api/option-categories/{id:[0-9]+}", h.updateOptionCategory).Methods("PUT")
	r.HandleFunc("/api/option-categories/{id:[0-9]+}/options", h.addOption).Methods("POST")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/validate", h.validateOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id:[0-9]+}", h.updateOrder).Methods("PUT")
	r.HandleFunc("/api/orders/{id:[0-9]+}/cancel", h.cancelOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id:[0-9]+}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/merchant/orders/{id:[0-9]+}/accept", h.acceptOrder).Methods("POST")
	r.HandleFunc("/api/merchant/restaurants/{id:[0-9]+}/orders", h.pendingOrders).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "marketplace-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Restaurants

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	appuser, ok := requireRole(w, r, RoleMerchant)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	var req domain.RestaurantCreateRequest
	if err := json.Unmarshal([]byte(r.FormValue("data")), &req); err != nil {
		http.Error(w, "invalid restaurant data: "+err.Error(), http.StatusBadRequest)
		return
	}

	var banner service.Upload
	file, header, err := r.FormFile("banner")
	if err == nil {
		defer file.Close()
		banner = service.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	}

	rest, err := h.Restaurants.Create(r.Context(), appuser.ID, req, banner)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsRestaurantAdmin, id); !ok {
		return
	}
	var req domain.RestaurantUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	rest, err := h.Restaurants.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	collection, err := h.Restaurants.Search(r.Context(), r.URL.Query().Get("q"), page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collection)
}

func (h *Handler) nearbyRestaurants(w http.ResponseWriter, r *http.Request) {
	lat, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		http.Error(w, "lat must be a number", http.StatusBadRequest)
		return
	}
	lng, err := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if err != nil {
		http.Error(w, "lng must be a number", http.StatusBadRequest)
		return
	}
	nearby, err := h.Restaurants.GetWithinRadius(r.Context(), lat, lng)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nearby)
}

func (h *Handler) queryPrepop(w http.ResponseWriter, r *http.Request) {
	terms, err := h.Restaurants.QueryPrepop(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, terms)
}

func (h *Handler) myRestaurants(w http.ResponseWriter, r *http.Request) {
	appuser, ok := requireRole(w, r, RoleMerchant)
	if !ok {
		return
	}
	page, size := pageParams(r)
	collection, err := h.Restaurants.ListByAppUser(r.Context(), appuser.ID, page, size)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, collection)
}

// Menu

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Menu.GetMenu(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getOptions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	options, err := h.Menu.GetOptions(r.Context(), vars["slug"], vars["item"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, options)
}

// getOptionCategories lists inactive categories too, so only the
// restaurant's admins may see it.
func (h *Handler) getOptionCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsRestaurantAdmin, restaurantID); !ok {
		return
	}
	categories, err := h.Menu.GetOptionCategoriesByRestaurant(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	restaurantID := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsRestaurantAdmin, restaurantID); !ok {
		return
	}
	var req domain.CategoryCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.RestaurantID = restaurantID

	category, err := h.Menu.CreateCategory(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsCategoryAdmin, id); !ok {
		return
	}
	var req domain.CategoryUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := h.Menu.UpdateCategory(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	categoryID := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsCategoryAdmin, categoryID); !ok {
		return
	}
	var req domain.MenuItemCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.CategoryID = categoryID

	item, err := h.Menu.CreateMenuItem(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsMenuItemAdmin, id); !ok {
		return
	}
	var req domain.MenuItemUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	item, err := h.Menu.UpdateMenuItem(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) createOptionCategory(w http.ResponseWriter, r *http.Request) {
	restaurantID := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsRestaurantAdmin, restaurantID); !ok {
		return
	}
	var req domain.OptionCategoryCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.RestaurantID = restaurantID

	category, err := h.Menu.CreateOptionCategory(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

func (h *Handler) updateOptionCategory(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsOptionCategoryAdmin, id); !ok {
		return
	}
	var req domain.OptionCategoryUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	category, err := h.Menu.UpdateOptionCategory(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, category)
}

func (h *Handler) addOption(w http.ResponseWriter, r *http.Request) {
	categoryID := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsOptionCategoryAdmin, categoryID); !ok {
		return
	}
	var req domain.OptionCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.CategoryID = categoryID

	option, err := h.Menu.AddOption(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, option)
}

func (h *Handler) attachOptionCategory(w http.ResponseWriter, r *http.Request) {
	itemID := pathInt(r, "id")
	optionCategoryID := pathInt(r, "optionCategoryId")
	if _, ok := h.authorize(w, r, h.Authz.IsMenuItemAdmin, itemID); !ok {
		return
	}
	if _, ok := h.authorize(w, r, h.Authz.IsOptionCategoryAdmin, optionCategoryID); !ok {
		return
	}
	if err := h.Menu.AttachOptionCategory(r.Context(), itemID, optionCategoryID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Orders

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	appuser, ok := requireAppUser(w, r)
	if !ok {
		return
	}
	var req domain.OrderCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.Orders.Create(r.Context(), appuser.ID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) validateOrder(w http.ResponseWriter, r *http.Request) {
	var req domain.OrderCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	valid, err := h.Pricer.Validate(r.Context(), req.RestaurantID, req.LineItems)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	appuser, ok := requireAppUser(w, r)
	if !ok {
		return
	}
	orders, err := h.Orders.ListByAppUser(r.Context(), appuser.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// getOrder is open to the customer who placed the order and to the merchant
// who owns its restaurant.
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	appuser, ok := requireAppUser(w, r)
	if !ok {
		return
	}
	id := pathInt(r, "id")

	allowed, err := h.Authz.IsOrderOwner(r.Context(), appuser.ID, id)
	if err == nil && !allowed {
		allowed, err = h.Authz.IsOrderMerchant(r.Context(), appuser.ID, id)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if !allowed {
		writeError(w, domain.ErrForbidden)
		return
	}

	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsOrderOwner, id); !ok {
		return
	}
	var req domain.OrderUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	order, err := h.Orders.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsOrderOwner, id); !ok {
		return
	}
	if err := h.Orders.Cancel(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.StatusCancelled)})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsOrderOwner, id); !ok {
		return
	}
	png, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) acceptOrder(w http.ResponseWriter, r *http.Request) {
	id := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsOrderMerchant, id); !ok {
		return
	}
	if err := h.Orders.Accept(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(domain.StatusAccepted)})
}

func (h *Handler) pendingOrders(w http.ResponseWriter, r *http.Request) {
	restaurantID := pathInt(r, "id")
	if _, ok := h.authorize(w, r, h.Authz.IsRestaurantAdmin, restaurantID); !ok {
		return
	}
	orders, err := h.Orders.TodaysPendingOrders(r.Context(), restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Helpers

type appUser struct {
	ID   int
	Role string
}

type ownershipCheck func(ctx context.Context, appuserID, resourceID int) (bool, error)

func principal(r *http.Request) (appUser, bool) {
	id, err := strconv.Atoi(r.Header.Get(HeaderAppUserID))
	if err != nil || id <= 0 {
		return appUser{}, false
	}
	return appUser{ID: id, Role: strings.ToLower(r.Header.Get(HeaderAppUserRole))}, true
}

func requireAppUser(w http.ResponseWriter, r *http.Request) (appUser, bool) {
	appuser, ok := principal(r)
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
	}
	return appuser, ok
}

func requireRole(w http.ResponseWriter, r *http.Request, role string) (appUser, bool) {
	appuser, ok := requireAppUser(w, r)
	if !ok {
		return appuser, false
	}
	if appuser.Role != role {
		writeError(w, domain.ErrForbidden)
		return appuser, false
	}
	return appuser, true
}

// authorize runs check for the calling principal and writes 401/403 when the
// request may not proceed.
func (h *Handler) authorize(w http.ResponseWriter, r *http.Request, check ownershipCheck, resourceID int) (appUser, bool) {
	appuser, ok := requireAppUser(w, r)
	if !ok {
		return appuser, false
	}
	allowed, err := check(r.Context(), appuser.ID, resourceID)
	if err != nil {
		writeError(w, err)
		return appuser, false
	}
	if !allowed {
		writeError(w, domain.ErrForbidden)
		return appuser, false
	}
	return appuser, true
}

func pathInt(r *http.Request, name string) int {
	id, _ := strconv.Atoi(mux.Vars(r)[name])
	return id
}

func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	return page, size
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		http.Error(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps the domain error kinds onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	var validation domain.ValidationError
	var conflict domain.StateConflictError
	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &conflict):
		http.Error(w, conflict.Reason, http.StatusConflict)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDependency):
		log.Printf("[HTTP] %v", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		log.Printf("[HTTP] internal error: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
