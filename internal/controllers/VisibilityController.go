package controllers

import (
	"errors"
	json "github.com/goccy/go-json"
	"lifedash/internal/models"
	"lifedash/internal/providers"
	"lifedash/internal/services"
	"net/http"
)

type VisibilityController struct {
	logger  providers.Logger
	service services.VisibilityServiceInterface
}

type setVisibilityRequest struct {
	Component string `json:"component"`
	Visible   *bool  `json:"visible"`
}

func NewVisibilityController(logger providers.Logger, service services.VisibilityServiceInterface) *VisibilityController {
	return &VisibilityController{
		logger:  logger,
		service: service,
	}
}

func (vc *VisibilityController) GetVisibility(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, vc.service.Get())
}

func (vc *VisibilityController) Toggle(w http.ResponseWriter, r *http.Request) {
	component, err := models.ParseComponent(r.URL.Query().Get("c"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err = vc.service.Toggle(component); err != nil {
		vc.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vc.service.Get())
}

func (vc *VisibilityController) SetVisibility(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload setVisibilityRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Visible == nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	component, err := models.ParseComponent(payload.Component)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err = vc.service.SetVisibility(component, *payload.Visible); err != nil {
		vc.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vc.service.Get())
}

func (vc *VisibilityController) Reset(w http.ResponseWriter, r *http.Request) {
	vc.service.ResetToDefaults()
	writeJSON(w, http.StatusOK, vc.service.Get())
}

func (vc *VisibilityController) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, models.ErrInvalidComponent) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	vc.logger.Errorf(providers.TypeApp, "Visibility update failed: %s", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
