package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/service"
)

// AdminHandler serves the administrative mutators. Every route it handles is
// mounted behind AuthMiddleware and RequireAdmin.
type AdminHandler struct {
	admin   *service.AdminService
	catalog *service.CatalogService
	timeout time.Duration
}

func NewAdminHandler(admin *service.AdminService, catalog *service.CatalogService, timeout time.Duration) *AdminHandler {
	return &AdminHandler{
		admin:   admin,
		catalog: catalog,
		timeout: timeout,
	}
}

type RenameUserRequestDTO struct {
	Name string `json:"name"`
}

type UpdatePhotoRequestDTO struct {
	PhotoURL string `json:"photo_url"`
}

// POST /api/v1/admin/cars
func (h *AdminHandler) CreateCar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var car domain.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.catalog.CreateCar(ctx, &car); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, car)
}

// PUT /api/v1/admin/cars/{car_id}
func (h *AdminHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var car domain.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	car.ID = chi.URLParam(r, "car_id")

	if err := h.catalog.UpdateCar(ctx, &car); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, car)
}

// DELETE /api/v1/admin/cars/{car_id}
func (h *AdminHandler) DeleteCar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.catalog.DeleteCar(ctx, chi.URLParam(r, "car_id")); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// GET /api/v1/admin/purchases
func (h *AdminHandler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	purchases, err := h.admin.ListPurchases(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"purchases": purchases})
}

// DELETE /api/v1/admin/purchases/{purchase_id}
func (h *AdminHandler) DeletePurchase(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	caller := identityFromContext(r.Context())
	if err := h.admin.DeletePurchase(ctx, caller.UserID, chi.URLParam(r, "purchase_id")); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	users, err := h.admin.ListUsers(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// DELETE /api/v1/admin/users/{user_id}
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	caller := identityFromContext(r.Context())
	if err := h.admin.DeleteUser(ctx, caller.UserID, chi.URLParam(r, "user_id")); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// POST /api/v1/admin/users/{user_id}/admin
func (h *AdminHandler) ToggleAdmin(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	caller := identityFromContext(r.Context())
	isAdmin, err := h.admin.ToggleAdmin(ctx, caller.UserID, chi.URLParam(r, "user_id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"is_admin": isAdmin})
}

// PUT /api/v1/admin/users/{user_id}/name
func (h *AdminHandler) RenameUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req RenameUserRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	caller := identityFromContext(r.Context())
	if err := h.admin.RenameUser(ctx, caller.UserID, chi.URLParam(r, "user_id"), req.Name); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// PUT /api/v1/admin/users/{user_id}/photo
func (h *AdminHandler) UpdateUserPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req UpdatePhotoRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	caller := identityFromContext(r.Context())
	if err := h.admin.UpdateUserPhoto(ctx, caller.UserID, chi.URLParam(r, "user_id"), req.PhotoURL); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}
