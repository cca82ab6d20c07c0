package catalogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/catalogue-service/internal/middleware"
)

// Handler exposes catalogue HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Get("/", h.listProducts)
		r.Get("/{id}", h.getProduct)
	})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	correlationID := middleware.CorrelationID(r.Context())
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"message": "invalid request body"})
		return
	}
	entry, err := h.service.Create(r.Context(), req, correlationID)
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		respond(w, http.StatusBadRequest, map[string]any{"errors": fieldErrs})
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusCreated, entry)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	correlationID := middleware.CorrelationID(r.Context())
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondNotFound(w, raw)
		return
	}
	entry, svcErr := h.service.Get(r.Context(), id, correlationID)
	if errors.Is(svcErr, ErrNotFound) {
		respondNotFound(w, raw)
		return
	}
	if svcErr != nil {
		http.Error(w, svcErr.Error(), http.StatusInternalServerError)
		return
	}
	respond(w, http.StatusOK, entry)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	correlationID := middleware.CorrelationID(r.Context())
	entries, err := h.service.List(r.Context(), correlationID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	// Ensure non-nil slice for JSON output
	if entries == nil {
		entries = []*CatalogueEntry{}
	}
	respond(w, http.StatusOK, entries)
}

func respondNotFound(w http.ResponseWriter, id string) {
	respond(w, http.StatusNotFound, map[string]string{
		"message": fmt.Sprintf("Product with ID %s not found", id),
	})
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
