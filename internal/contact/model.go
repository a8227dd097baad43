package contact

import (
	"github.com/gofrs/uuid"
	"github.com/vasiliy-maslov/portfolio-api/internal/apperr"
)

var ErrNotFound = apperr.New(apperr.ErrNotFound, "contact not found")

type Contact struct {
	ID      uuid.UUID `json:"_id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	UpTime  string    `json:"up_time"`
	UpDate  string    `json:"up_date"`
}
