package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/blog"
)

// stampedFields are sent back by clients that echo a stored document. The server
// always overwrites them.
type stampedFields struct {
	ID     string `json:"_id,omitempty"`
	UpTime string `json:"up_time,omitempty"`
	UpDate string `json:"up_date,omitempty"`
}

type BlogRequest struct {
	stampedFields
	Title   string `json:"title" validate:"required"`
	Details string `json:"details"`
	Image   string `json:"image"`
}

type BlogHandler struct {
	service  blog.Service
	validate *validator.Validate
}

func NewBlogHandler(service blog.Service) *BlogHandler {
	return &BlogHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *BlogHandler) RegisterRoutes(router chi.Router) {
	router.Route("/blog", func(r chi.Router) {
		r.Get("/", h.handleListPosts)
		r.Post("/", h.handleCreatePost)
		r.Get("/{id}", h.handleGetPostByID)
		r.Put("/{id}", h.handleUpsertPost)
		r.Delete("/{id}", h.handleDeletePost)
	})
}

func (h *BlogHandler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPosts(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "Failed to list blog posts")
		return
	}
	respondWithJSON(w, http.StatusOK, posts)
}

func (h *BlogHandler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var requestPayload BlogRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	post := blog.Blog{
		Title:   requestPayload.Title,
		Details: requestPayload.Details,
		Image:   requestPayload.Image,
	}
	res, err := h.service.CreatePost(r.Context(), &post)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create blog post via service")
		respondWithServiceError(w, err, "Failed to create blog post")
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

func (h *BlogHandler) handleGetPostByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	post, err := h.service.GetPostByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "Failed to get blog post by id")
		return
	}
	respondWithJSON(w, http.StatusOK, post)
}

func (h *BlogHandler) handleUpsertPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var requestPayload BlogRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	post := blog.Blog{
		ID:      id,
		Title:   requestPayload.Title,
		Details: requestPayload.Details,
		Image:   requestPayload.Image,
	}
	res, err := h.service.UpsertPost(r.Context(), &post)
	if err != nil {
		log.Error().Err(err).Stringer("blog_id", id).Msg("Failed to update blog post via service")
		respondWithServiceError(w, err, "Failed to update blog post")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *BlogHandler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeletePost(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Stringer("blog_id", id).Msg("Failed to delete blog post via service")
		respondWithServiceError(w, err, "Failed to delete blog post")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}
