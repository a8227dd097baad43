package blog

import (
	"github.com/gofrs/uuid"
	"github.com/vasiliy-maslov/portfolio-api/internal/apperr"
)

var ErrNotFound = apperr.New(apperr.ErrNotFound, "blog post not found")

type Blog struct {
	ID      uuid.UUID `json:"_id"`
	Title   string    `json:"title"`
	Details string    `json:"details"`
	Image   string    `json:"image"`
	UpTime  string    `json:"up_time"`
	UpDate  string    `json:"up_date"`
}
