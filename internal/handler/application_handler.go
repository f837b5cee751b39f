package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"job-tracker/internal/middleware"
	"job-tracker/internal/model"
	"job-tracker/internal/service"
	"job-tracker/pkg/apierror"
)

type ApplicationHandler struct {
	apps *service.ApplicationService
}

func NewApplicationHandler(apps *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("Not authorized"))
		return
	}

	var payload model.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("Invalid JSON body"))
		return
	}

	application, err := h.apps.Create(r.Context(), principal.ID, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.ApplicationResponse{
		Success:     true,
		Message:     "Application created successfully",
		Application: application,
	})
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("Not authorized"))
		return
	}

	query := r.URL.Query()
	page, err := h.apps.List(r.Context(), principal.ID, model.ListApplicationsParams{
		Status: query.Get("status"),
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
		Page:   query.Get("page"),
		Limit:  query.Get("limit"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ApplicationListResponse{
		Success:      true,
		Count:        len(page.Applications),
		Total:        page.Total,
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
		Applications: page.Applications,
	})
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("Not authorized"))
		return
	}

	application, err := h.apps.Get(r.Context(), principal.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ApplicationResponse{
		Success:     true,
		Application: application,
	})
}

func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("Not authorized"))
		return
	}

	var payload model.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.Validation("Invalid JSON body"))
		return
	}

	application, err := h.apps.Update(r.Context(), principal.ID, chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ApplicationResponse{
		Success:     true,
		Message:     "Application updated successfully",
		Application: application,
	})
}

func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthenticated("Not authorized"))
		return
	}

	if err := h.apps.Delete(r.Context(), principal.ID, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{
		Success: true,
		Message: "Application deleted successfully",
	})
}
