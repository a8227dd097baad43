package order

import (
	"time"

	"github.com/gofrs/uuid"
	"github.com/vasiliy-maslov/portfolio-api/internal/apperr"
	"github.com/vasiliy-maslov/portfolio-api/internal/book"
	"github.com/vasiliy-maslov/portfolio-api/internal/payment"
)

var (
	ErrNotFound             = apperr.New(apperr.ErrNotFound, "order not found")
	ErrAlreadyPaid          = apperr.New(apperr.ErrConflict, "order is already paid")
	ErrDuplicateTransaction = apperr.New(apperr.ErrConflict, "order with this transaction id already exists")
)

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

func (s Status) String() string {
	return string(s)
}

// Order is a checkout attempt. Book is a snapshot taken at checkout time and Data is
// the exact session request sent to the gateway.
type Order struct {
	ID            uuid.UUID              `json:"_id"`
	Book          book.Book              `json:"book"`
	PaidStatus    bool                   `json:"paidStatus"`
	TransactionID string                 `json:"transactionId"`
	Data          payment.SessionRequest `json:"data"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func (o *Order) Status() Status {
	if o.PaidStatus {
		return StatusPaid
	}
	return StatusPending
}

type Customer struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	PostCode string
	Country  string
}

type CheckoutInput struct {
	BookID   uuid.UUID
	Customer Customer
}

type CheckoutResult struct {
	URL           string
	OrderID       uuid.UUID
	TransactionID string
}
