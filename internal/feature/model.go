package feature

import (
	"github.com/gofrs/uuid"
	"github.com/vasiliy-maslov/portfolio-api/internal/apperr"
)

var ErrNotFound = apperr.New(apperr.ErrNotFound, "feature not found")

type Feature struct {
	ID      uuid.UUID `json:"_id"`
	Name    string    `json:"name"`
	Details string    `json:"details"`
	Image   string    `json:"image"`
	UpTime  string    `json:"up_time"`
	UpDate  string    `json:"up_date"`
}
