package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/feature"
)

type FeatureRequest struct {
	stampedFields
	Name    string `json:"name" validate:"required"`
	Details string `json:"details"`
	Image   string `json:"image"`
}

type FeatureHandler struct {
	service  feature.Service
	validate *validator.Validate
}

func NewFeatureHandler(service feature.Service) *FeatureHandler {
	return &FeatureHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *FeatureHandler) RegisterRoutes(router chi.Router) {
	router.Route("/feature", func(r chi.Router) {
		r.Get("/", h.handleListFeatures)
		r.Post("/", h.handleCreateFeature)
		r.Get("/{id}", h.handleGetFeatureByID)
		r.Put("/{id}", h.handleUpsertFeature)
		r.Delete("/{id}", h.handleDeleteFeature)
	})
}

func (h *FeatureHandler) handleListFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := h.service.ListFeatures(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "Failed to list features")
		return
	}
	respondWithJSON(w, http.StatusOK, features)
}

func (h *FeatureHandler) handleCreateFeature(w http.ResponseWriter, r *http.Request) {
	var requestPayload FeatureRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	f := feature.Feature{
		Name:    requestPayload.Name,
		Details: requestPayload.Details,
		Image:   requestPayload.Image,
	}
	res, err := h.service.CreateFeature(r.Context(), &f)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create feature via service")
		respondWithServiceError(w, err, "Failed to create feature")
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

func (h *FeatureHandler) handleGetFeatureByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	f, err := h.service.GetFeatureByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "Failed to get feature by id")
		return
	}
	respondWithJSON(w, http.StatusOK, f)
}

func (h *FeatureHandler) handleUpsertFeature(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var requestPayload FeatureRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	f := feature.Feature{
		ID:      id,
		Name:    requestPayload.Name,
		Details: requestPayload.Details,
		Image:   requestPayload.Image,
	}
	res, err := h.service.UpsertFeature(r.Context(), &f)
	if err != nil {
		log.Error().Err(err).Stringer("feature_id", id).Msg("Failed to update feature via service")
		respondWithServiceError(w, err, "Failed to update feature")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *FeatureHandler) handleDeleteFeature(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeleteFeature(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Stringer("feature_id", id).Msg("Failed to delete feature via service")
		respondWithServiceError(w, err, "Failed to delete feature")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}
