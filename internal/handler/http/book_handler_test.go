package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vasiliy-maslov/portfolio-api/internal/book"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
	handlerhttp "github.com/vasiliy-maslov/portfolio-api/internal/handler/http"
)

func newBookRouter(svc *MockBookService) *chi.Mux {
	router := chi.NewRouter()
	handlerhttp.NewBookHandler(svc).RegisterRoutes(router)
	return router
}

func TestBookHandler_handleCreateBook_Success(t *testing.T) {
	mockService := new(MockBookService)
	router := newBookRouter(mockService)

	newID := uuid.Must(uuid.NewV4())
	mockService.On("CreateBook", mock.Anything, mock.MatchedBy(func(b *book.Book) bool {
		return b.Name == "X" && b.Author == "Jahir" && b.Price.Equal(decimal.NewFromInt(100))
	})).Return(db.Inserted(newID), nil).Once()

	body := `{"name":"X","author":"Jahir","price":100,"image":"","review":"","details":""}`
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var actualResponse db.InsertResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&actualResponse))

	diff := cmp.Diff(*db.Inserted(newID), actualResponse)
	require.Empty(t, diff, "InsertResult mismatch (-expected +got):\n%s", diff)
	mockService.AssertExpectations(t)
}

func TestBookHandler_handleCreateBook_BadRequests(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails map[string]string
	}{
		{
			name:        "missing_name",
			body:        `{"price":10}`,
			wantDetails: map[string]string{"name": "is required"},
		},
		{
			name:        "negative_price",
			body:        `{"name":"X","price":-1}`,
			wantDetails: map[string]string{"price": "must be greater than or equal to 0"},
		},
		{
			name: "unknown_field",
			body: `{"name":"X","price":1,"isbn":"123"}`,
		},
		{
			name: "malformed_json",
			body: `{"name":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBookService)
			router := newBookRouter(mockService)

			req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			if tt.wantDetails != nil {
				var resp handlerhttp.ValidationErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Validation failed", resp.Error)
				assert.Equal(t, tt.wantDetails, resp.Details)
			}
			mockService.AssertNotCalled(t, "CreateBook", mock.Anything, mock.Anything)
		})
	}
}

func TestBookHandler_handleGetBookByID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	tests := []struct {
		name       string
		path       string
		setup      func(m *MockBookService)
		wantStatus int
		wantError  string
	}{
		{
			name: "found",
			path: "/book/" + id.String(),
			setup: func(m *MockBookService) {
				m.On("GetBookByID", mock.Anything, id).
					Return(&book.Book{ID: id, Name: "X", Price: decimal.NewFromInt(100)}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not_found",
			path: "/book/" + id.String(),
			setup: func(m *MockBookService) {
				m.On("GetBookByID", mock.Anything, id).Return(nil, book.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantError:  "book not found",
		},
		{
			name: "internal_error_hides_details",
			path: "/book/" + id.String(),
			setup: func(m *MockBookService) {
				m.On("GetBookByID", mock.Anything, id).Return(nil, errors.New("pq: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Failed to get book by id",
		},
		{
			name:       "invalid_id",
			path:       "/book/not-a-uuid",
			setup:      func(m *MockBookService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid id parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockBookService)
			tt.setup(mockService)
			router := newBookRouter(mockService)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				var resp map[string]string
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.wantError, resp["error"])
			} else {
				var got map[string]any
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, id.String(), got["_id"])
				assert.Equal(t, float64(100), got["price"], "price is a JSON number")
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestBookHandler_handleUpsertBook_UsesPathID(t *testing.T) {
	mockService := new(MockBookService)
	router := newBookRouter(mockService)

	id := uuid.Must(uuid.NewV4())
	other := uuid.Must(uuid.NewV4())
	mockService.On("UpsertBook", mock.Anything, mock.MatchedBy(func(b *book.Book) bool {
		return b.ID == id && b.Name == "New"
	})).Return(db.Upserted(id, true), nil).Once()

	body := `{"_id":"` + other.String() + `","name":"New","price":5}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/book/"+id.String(), bytes.NewBufferString(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var res db.UpdateResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
	assert.Equal(t, int64(1), res.UpsertedCount)
	require.NotNil(t, res.UpsertedID)
	assert.Equal(t, id, *res.UpsertedID)
	mockService.AssertExpectations(t)
}

func TestBookHandler_ListAndDelete(t *testing.T) {
	mockService := new(MockBookService)
	router := newBookRouter(mockService)

	id := uuid.Must(uuid.NewV4())
	mockService.On("ListBooks", mock.Anything).Return([]book.Book{}, nil).Once()
	mockService.On("DeleteBook", mock.Anything, id).Return(db.Deleted(0), nil).Once()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/book", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/book/"+id.String(), nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, rr.Body.String())
	mockService.AssertExpectations(t)
}
