package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopbasket/backend/internal/entity"
	"github.com/shopbasket/backend/internal/service"
)

const msgInvalidIdentifier = "Please supply a single value for productId or productName."

// Handler handles HTTP requests for the basket API.
type Handler struct {
	basketSvc *service.BasketService
}

func NewHandler(basketSvc *service.BasketService) *Handler {
	return &Handler{
		basketSvc: basketSvc,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/stock", h.handleGetStock)
	mux.HandleFunc("GET /api/{userId}/basket", h.handleGetBasket)
	mux.HandleFunc("PUT /api/{userId}/basket/add", h.handleAddToBasket)
	mux.HandleFunc("POST /api/{userId}/basket/add", h.handleBulkAddToBasket)
	mux.HandleFunc("PUT /api/{userId}/basket/remove", h.handleRemoveFromBasket)
	mux.HandleFunc("PUT /api/{userId}/basket/checkout", h.handleCheckout)
	mux.HandleFunc("GET /diagnostics/heartbeat", h.handleHeartbeat)
}

func (h *Handler) handleGetStock(w http.ResponseWriter, r *http.Request) {
	stock := h.basketSvc.GetStock()
	if len(stock) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

func (h *Handler) handleGetBasket(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.basketSvc.GetBasket(r.PathValue("userId")))
}

func (h *Handler) handleAddToBasket(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	identifier, err := identifierFromQuery(r)
	if err != nil {
		http.Error(w, msgInvalidIdentifier, http.StatusBadRequest)
		return
	}

	switch h.basketSvc.CanAddItem(userID, identifier) {
	case entity.StatusInvalidIdentifier:
		http.Error(w, msgInvalidIdentifier, http.StatusBadRequest)
		return
	case entity.StatusProductNotFound:
		http.Error(w, "Product", http.StatusNotFound)
		return
	case entity.StatusInsufficientStock:
		http.Error(w, "Not Enough Stock", http.StatusBadRequest)
		return
	}

	basket, err := h.basketSvc.AddItem(userID, identifier)
	if err != nil {
		slog.Error("Failed to add item to basket", "user_id", userID, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) handleBulkAddToBasket(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	var items []entity.BasketItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	check := h.basketSvc.CanAddItems(userID, items)
	if check.HasNotFoundProducts() {
		http.Error(w, "Products not found: "+joinIDs(check.ProductsNotFound), http.StatusBadRequest)
		return
	}
	if check.HasUnavailableProducts() {
		http.Error(w, "Not Enough Stock for item(s): "+strings.Join(check.ProductsNotAvailable, ", "), http.StatusBadRequest)
		return
	}

	basket, err := h.basketSvc.AddItems(userID, items)
	if err != nil {
		slog.Error("Failed to bulk add items to basket", "user_id", userID, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) handleRemoveFromBasket(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	identifier, err := identifierFromQuery(r)
	if err != nil {
		http.Error(w, msgInvalidIdentifier, http.StatusBadRequest)
		return
	}

	switch h.basketSvc.CanRemoveItem(userID, identifier) {
	case entity.StatusInvalidIdentifier:
		http.Error(w, msgInvalidIdentifier, http.StatusBadRequest)
		return
	case entity.StatusProductNotFound:
		http.Error(w, "Product", http.StatusNotFound)
		return
	case entity.StatusNotInBasket:
		http.Error(w, "Not in basket", http.StatusBadRequest)
		return
	}

	basket, err := h.basketSvc.RemoveItem(userID, identifier)
	if err != nil {
		slog.Error("Failed to remove item from basket", "user_id", userID, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	check := h.basketSvc.CanCheckout(userID)
	if check.HasNotFoundProducts() {
		http.Error(w, "Products not found: "+joinIDs(check.ProductsNotFound), http.StatusBadRequest)
		return
	}
	if check.HasUnavailableProducts() {
		http.Error(w, "Not Enough Stock for item(s): "+strings.Join(check.ProductsNotAvailable, ", "), http.StatusBadRequest)
		return
	}

	invoice, err := h.basketSvc.Checkout(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to checkout basket", "user_id", userID, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, invoice)
}

func (h *Handler) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// EnableCORS is a middleware to allow browser frontends to connect.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// identifierFromQuery builds the product identifier from the productId /
// productName query parameters. An unparsable productId is reported the same
// way as an invalid identifier.
func identifierFromQuery(r *http.Request) (entity.ProductIdentifier, error) {
	var identifier entity.ProductIdentifier
	if raw := r.URL.Query().Get("productId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return identifier, err
		}
		identifier.ProductID = &id
	}
	identifier.ProductName = r.URL.Query().Get("productName")
	return identifier, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "err", err)
	}
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
