package book

import (
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/vasiliy-maslov/portfolio-api/internal/apperr"
)

func init() {
	// Prices travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

var ErrNotFound = apperr.New(apperr.ErrNotFound, "book not found")

type Book struct {
	ID      uuid.UUID       `json:"_id"`
	Name    string          `json:"name"`
	Author  string          `json:"author"`
	Price   decimal.Decimal `json:"price"`
	Image   string          `json:"image"`
	Review  string          `json:"review"`
	Details string          `json:"details"`
}
