package http_test

import (
	"context"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/vasiliy-maslov/portfolio-api/internal/blog"
	"github.com/vasiliy-maslov/portfolio-api/internal/book"
	"github.com/vasiliy-maslov/portfolio-api/internal/contact"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
	"github.com/vasiliy-maslov/portfolio-api/internal/feature"
	"github.com/vasiliy-maslov/portfolio-api/internal/order"
)

type MockBookService struct {
	mock.Mock
}

func (m *MockBookService) CreateBook(ctx context.Context, b *book.Book) (*db.InsertResult, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.InsertResult), args.Error(1)
}

func (m *MockBookService) ListBooks(ctx context.Context) ([]book.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]book.Book), args.Error(1)
}

func (m *MockBookService) GetBookByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*book.Book), args.Error(1)
}

func (m *MockBookService) UpsertBook(ctx context.Context, b *book.Book) (*db.UpdateResult, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.UpdateResult), args.Error(1)
}

func (m *MockBookService) DeleteBook(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.DeleteResult), args.Error(1)
}

type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) CreatePost(ctx context.Context, p *blog.Blog) (*db.InsertResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.InsertResult), args.Error(1)
}

func (m *MockBlogService) ListPosts(ctx context.Context) ([]blog.Blog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.Blog), args.Error(1)
}

func (m *MockBlogService) GetPostByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Blog), args.Error(1)
}

func (m *MockBlogService) UpsertPost(ctx context.Context, p *blog.Blog) (*db.UpdateResult, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.UpdateResult), args.Error(1)
}

func (m *MockBlogService) DeletePost(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.DeleteResult), args.Error(1)
}

type MockFeatureService struct {
	mock.Mock
}

func (m *MockFeatureService) CreateFeature(ctx context.Context, f *feature.Feature) (*db.InsertResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.InsertResult), args.Error(1)
}

func (m *MockFeatureService) ListFeatures(ctx context.Context) ([]feature.Feature, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]feature.Feature), args.Error(1)
}

func (m *MockFeatureService) GetFeatureByID(ctx context.Context, id uuid.UUID) (*feature.Feature, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*feature.Feature), args.Error(1)
}

func (m *MockFeatureService) UpsertFeature(ctx context.Context, f *feature.Feature) (*db.UpdateResult, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.UpdateResult), args.Error(1)
}

func (m *MockFeatureService) DeleteFeature(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.DeleteResult), args.Error(1)
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) CreateContact(ctx context.Context, c *contact.Contact) (*db.InsertResult, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.InsertResult), args.Error(1)
}

func (m *MockContactService) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockContactService) GetContactByID(ctx context.Context, id uuid.UUID) (*contact.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Contact), args.Error(1)
}

func (m *MockContactService) UpsertContact(ctx context.Context, c *contact.Contact) (*db.UpdateResult, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.UpdateResult), args.Error(1)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.DeleteResult), args.Error(1)
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Checkout(ctx context.Context, in order.CheckoutInput) (*order.CheckoutResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.CheckoutResult), args.Error(1)
}

func (m *MockOrderService) ConfirmPayment(ctx context.Context, transactionID string) (string, error) {
	args := m.Called(ctx, transactionID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) FailPayment(ctx context.Context, transactionID string) (string, error) {
	args := m.Called(ctx, transactionID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) CancelPayment(ctx context.Context, transactionID string) (string, error) {
	args := m.Called(ctx, transactionID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*db.DeleteResult), args.Error(1)
}
