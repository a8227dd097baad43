package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/vasiliy-maslov/portfolio-api/internal/book"
)

// BookRequest is the body of POST /book and PUT /book/{id}. An _id in the body is
// accepted and ignored; the path id wins.
type BookRequest struct {
	ID      string          `json:"_id,omitempty"`
	Name    string          `json:"name" validate:"required"`
	Author  string          `json:"author"`
	Price   decimal.Decimal `json:"price" validate:"gte=0"`
	Image   string          `json:"image"`
	Review  string          `json:"review"`
	Details string          `json:"details"`
}

func (req BookRequest) toDomain() book.Book {
	return book.Book{
		Name:    req.Name,
		Author:  req.Author,
		Price:   req.Price,
		Image:   req.Image,
		Review:  req.Review,
		Details: req.Details,
	}
}

type BookHandler struct {
	service  book.Service
	validate *validator.Validate
}

func NewBookHandler(service book.Service) *BookHandler {
	return &BookHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *BookHandler) RegisterRoutes(router chi.Router) {
	router.Route("/book", func(r chi.Router) {
		r.Get("/", h.handleListBooks)
		r.Post("/", h.handleCreateBook)
		r.Get("/{id}", h.handleGetBookByID)
		r.Put("/{id}", h.handleUpsertBook)
		r.Delete("/{id}", h.handleDeleteBook)
	})
}

func (h *BookHandler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListBooks(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list books via service")
		respondWithServiceError(w, err, "Failed to list books")
		return
	}
	respondWithJSON(w, http.StatusOK, books)
}

func (h *BookHandler) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var requestPayload BookRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	b := requestPayload.toDomain()
	res, err := h.service.CreateBook(r.Context(), &b)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create book via service")
		respondWithServiceError(w, err, "Failed to create book")
		return
	}
	respondWithJSON(w, http.StatusCreated, res)
}

func (h *BookHandler) handleGetBookByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	b, err := h.service.GetBookByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "Failed to get book by id")
		return
	}
	respondWithJSON(w, http.StatusOK, b)
}

func (h *BookHandler) handleUpsertBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var requestPayload BookRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	b := requestPayload.toDomain()
	b.ID = id
	res, err := h.service.UpsertBook(r.Context(), &b)
	if err != nil {
		log.Error().Err(err).Stringer("book_id", id).Msg("Failed to update book via service")
		respondWithServiceError(w, err, "Failed to update book")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

func (h *BookHandler) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeleteBook(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Stringer("book_id", id).Msg("Failed to delete book via service")
		respondWithServiceError(w, err, "Failed to delete book")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}
