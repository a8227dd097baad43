package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/contact"
)

type ContactRequest struct {
	stampedFields
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

func (req ContactRequest) toDomain() contact.Contact {
	return contact.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
}

type ContactHandler struct {
	service  contact.Service
	validate *validator.Validate
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *ContactHandler) RegisterRoutes(router chi.Router) {
	router.Route("/contact", func(r chi.Router) {
		r.Get("/", h.handleListContacts)
		r.Post("/", h.handleCreateContact)
		r.Get("/{id}", h.handleGetContactByID)
		r.Put("/{id}", h.handleUpsertContact)
		r.Delete("/{id}", h.handleDeleteContact)
	})
}

func (h *ContactHandler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.service.ListContacts(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "Failed to list contacts")
		return
	}
	respondWithJSON(w, http.StatusOK, contacts)
}

func (h *ContactHandler) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var requestPayload ContactRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	c := requestPayload.toDomain()
	res, err := h.service.CreateContact(r.Context(), &c)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create contact via service")
		respondWithServiceError(w, err, "Failed to create contact")
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

func (h *ContactHandler) handleGetContactByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetContactByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "Failed to get contact by id")
		return
	}
	respondWithJSON(w, http.StatusOK, c)
}

func (h *ContactHandler) handleUpsertContact(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var requestPayload ContactRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	c := requestPayload.toDomain()
	c.ID = id
	res, err := h.service.UpsertContact(r.Context(), &c)
	if err != nil {
		log.Error().Err(err).Stringer("contact_id", id).Msg("Failed to update contact via service")
		respondWithServiceError(w, err, "Failed to update contact")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *ContactHandler) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeleteContact(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Stringer("contact_id", id).Msg("Failed to delete contact via service")
		respondWithServiceError(w, err, "Failed to delete contact")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}
