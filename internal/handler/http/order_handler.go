package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/order"
)

type CheckoutRequest struct {
	BookID  string `json:"bookId" validate:"required,uuid"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Post    string `json:"post"`
	Country string `json:"country"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type OrderResponse struct {
	order.Order
	Status order.Status `json:"status"`
}

type OrderHandler struct {
	service  order.Service
	validate *validator.Validate
}

func NewOrderHandler(service order.Service) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: newValidator(),
	}
}

func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Route("/order", func(r chi.Router) {
		r.Post("/", h.handleCheckout)
		r.Get("/", h.handleListOrders)
		r.Get("/{id}", h.handleGetOrderByID)
		r.Delete("/{id}", h.handleDeleteOrder)
	})

	router.Route("/payment", func(r chi.Router) {
		r.Post("/success/{transId}", h.handlePaymentSuccess)
		r.Post("/fail/{transId}", h.handlePaymentFail)
		r.Post("/cancel/{transId}", h.handlePaymentCancel)
		r.Post("/ipn", h.handlePaymentIPN)
	})
}

func (h *OrderHandler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var requestPayload CheckoutRequest
	if !decodeAndValidate(w, r, h.validate, &requestPayload) {
		return
	}

	in := order.CheckoutInput{
		BookID: uuid.FromStringOrNil(requestPayload.BookID),
		Customer: order.Customer{
			Name:     requestPayload.Name,
			Email:    requestPayload.Email,
			Phone:    requestPayload.Phone,
			Address:  requestPayload.Address,
			City:     requestPayload.City,
			State:    requestPayload.State,
			PostCode: requestPayload.Post,
			Country:  requestPayload.Country,
		},
	}

	res, err := h.service.Checkout(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Str("book_id", requestPayload.BookID).Msg("Failed to checkout via service")
		respondWithServiceError(w, err, "Failed to create order")
		return
	}

	log.Info().Str("transaction_id", res.TransactionID).Str("url", res.URL).Msg("Redirecting buyer to payment gateway")
	respondWithJSON(w, http.StatusOK, CheckoutResponse{URL: res.URL})
}

func (h *OrderHandler) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		respondWithServiceError(w, err, "Failed to list orders")
		return
	}

	responsePayload := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responsePayload = append(responsePayload, OrderResponse{Order: o, Status: o.Status()})
	}
	respondWithJSON(w, http.StatusOK, responsePayload)
}

func (h *OrderHandler) handleGetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	o, err := h.service.GetOrderByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err, "Failed to get order by id")
		return
	}
	respondWithJSON(w, http.StatusOK, OrderResponse{Order: *o, Status: o.Status()})
}

func (h *OrderHandler) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Stringer("order_id", id).Msg("Failed to delete order via service")
		respondWithServiceError(w, err, "Failed to delete order")
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}

type paymentOutcome func(r *http.Request, transactionID string) (string, error)

// redirectOnOutcome runs a gateway callback and sends the buyer to the returned client
// URL. When nothing changed the buyer gets a JSON error instead of a redirect.
func redirectOnOutcome(outcome paymentOutcome, fallback string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		transactionID := chi.URLParam(r, "transId")

		target, err := outcome(r, transactionID)
		if err != nil {
			log.Warn().Err(err).Str("transaction_id", transactionID).Msg("Payment callback did not change any order")
			respondWithServiceError(w, err, fallback)
			return
		}

		http.Redirect(w, r, target, http.StatusFound)
	}
}

func (h *OrderHandler) handlePaymentSuccess(w http.ResponseWriter, r *http.Request) {
	redirectOnOutcome(func(r *http.Request, tx string) (string, error) {
		return h.service.ConfirmPayment(r.Context(), tx)
	}, "Failed to confirm payment")(w, r)
}

func (h *OrderHandler) handlePaymentFail(w http.ResponseWriter, r *http.Request) {
	redirectOnOutcome(func(r *http.Request, tx string) (string, error) {
		return h.service.FailPayment(r.Context(), tx)
	}, "Failed to record failed payment")(w, r)
}

func (h *OrderHandler) handlePaymentCancel(w http.ResponseWriter, r *http.Request) {
	redirectOnOutcome(func(r *http.Request, tx string) (string, error) {
		return h.service.CancelPayment(r.Context(), tx)
	}, "Failed to record cancelled payment")(w, r)
}

// handlePaymentIPN acknowledges the gateway's instant payment notification. Order
// state only changes through the buyer-facing callbacks.
func (h *OrderHandler) handlePaymentIPN(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("Failed to parse IPN form")
		respondWithError(w, http.StatusBadRequest, "Invalid IPN payload")
		return
	}

	log.Info().
		Str("transaction_id", r.PostForm.Get("tran_id")).
		Str("status", r.PostForm.Get("status")).
		Str("val_id", r.PostForm.Get("val_id")).
		Str("amount", r.PostForm.Get("amount")).
		Msg("Payment IPN received")

	respondWithJSON(w, http.StatusOK, map[string]string{"status": "received"})
}
