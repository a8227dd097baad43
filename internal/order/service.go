package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/book"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
	"github.com/vasiliy-maslov/portfolio-api/internal/payment"
	"github.com/vasiliy-maslov/portfolio-api/internal/stamp"
)

const (
	productCategory = "Books"
	productProfile  = "general"
	shippingMethod  = "Courier"
	defaultAddress  = "Dhaka"
	defaultCity     = "Dhaka"
	defaultPostcode = "1000"
	defaultCountry  = "Bangladesh"
)

type BookFinder interface {
	GetBookByID(ctx context.Context, id uuid.UUID) (*book.Book, error)
}

type PaymentGateway interface {
	InitSession(ctx context.Context, req payment.SessionRequest) (*payment.Session, error)
}

type Settings struct {
	// APIURL is where the gateway posts callbacks; ClientURL is where buyers land afterwards.
	APIURL    string
	ClientURL string
	Currency  string
}

type Service interface {
	Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error)
	// ConfirmPayment, FailPayment and CancelPayment return the client URL the buyer is
	// redirected to.
	ConfirmPayment(ctx context.Context, transactionID string) (string, error)
	FailPayment(ctx context.Context, transactionID string) (string, error)
	CancelPayment(ctx context.Context, transactionID string) (string, error)
	ListOrders(ctx context.Context) ([]Order, error)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type service struct {
	repo     Repository
	books    BookFinder
	gateway  PaymentGateway
	stamper  *stamp.Stamper
	settings Settings
	newID    func() (uuid.UUID, error)
}

func NewService(repo Repository, books BookFinder, gateway PaymentGateway, stamper *stamp.Stamper, settings Settings) Service {
	return &service{
		repo:     repo,
		books:    books,
		gateway:  gateway,
		stamper:  stamper,
		settings: settings,
		newID:    uuid.NewV4,
	}
}

func (s *service) Checkout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	b, err := s.books.GetBookByID(ctx, in.BookID)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return nil, book.ErrNotFound
		}
		log.Error().Err(err).Stringer("book_id", in.BookID).Msg("service: failed to load book for checkout")
		return nil, fmt.Errorf("service: failed to load book for checkout: %w", err)
	}

	id, err := s.newID()
	if err != nil {
		log.Error().Err(err).Msg("service: failed to generate transaction id")
		return nil, fmt.Errorf("service: failed to generate transaction id: %w", err)
	}
	transactionID := id.String()

	req := s.sessionRequest(b, in.Customer, transactionID)

	session, err := s.gateway.InitSession(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", transactionID).Stringer("book_id", b.ID).Msg("service: payment session was not created")
		return nil, fmt.Errorf("service: failed to init payment session: %w", err)
	}

	o := &Order{
		Book:          *b,
		PaidStatus:    false,
		TransactionID: transactionID,
		Data:          req,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		log.Error().Err(err).Str("transaction_id", transactionID).Msg("service: failed to create order in repository")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().
		Stringer("order_id", o.ID).
		Str("transaction_id", transactionID).
		Stringer("book_id", b.ID).
		Msg("service: order created, awaiting payment")

	return &CheckoutResult{
		URL:           session.GatewayPageURL,
		OrderID:       o.ID,
		TransactionID: transactionID,
	}, nil
}

func (s *service) sessionRequest(b *book.Book, c Customer, transactionID string) payment.SessionRequest {
	now := s.stamper.Now()
	address := orDefault(c.Address, defaultAddress)
	city := orDefault(c.City, defaultCity)
	postcode := orDefault(c.PostCode, defaultPostcode)
	country := orDefault(c.Country, defaultCountry)

	return payment.SessionRequest{
		TotalAmount:     b.Price,
		Currency:        s.settings.Currency,
		TranID:          transactionID,
		SuccessURL:      fmt.Sprintf("%s/payment/success/%s", s.settings.APIURL, transactionID),
		FailURL:         fmt.Sprintf("%s/payment/fail/%s", s.settings.APIURL, transactionID),
		CancelURL:       fmt.Sprintf("%s/payment/cancel/%s", s.settings.APIURL, transactionID),
		IPNURL:          s.settings.APIURL + "/payment/ipn",
		ShippingMethod:  shippingMethod,
		ProductName:     b.Name,
		ProductCategory: productCategory,
		ProductProfile:  productProfile,
		CusName:         c.Name,
		CusEmail:        c.Email,
		CusAdd1:         address,
		CusCity:         city,
		CusState:        c.State,
		CusPostcode:     postcode,
		CusCountry:      country,
		CusPhone:        c.Phone,
		ShipName:        c.Name,
		ShipAdd1:        address,
		ShipCity:        city,
		ShipState:       c.State,
		ShipPostcode:    postcode,
		ShipCountry:     country,
		NumOfItem:       1,
		OrderTime:       now.Time,
		OrderDate:       now.Date,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func (s *service) ConfirmPayment(ctx context.Context, transactionID string) (string, error) {
	modified, err := s.repo.MarkPaid(ctx, transactionID)
	if err != nil {
		return "", fmt.Errorf("service: failed to confirm payment: %w", err)
	}

	if !modified {
		exists, err := s.repo.ExistsByTransactionID(ctx, transactionID)
		if err != nil {
			log.Error().Err(err).Str("transaction_id", transactionID).Msg("service: failed to look up order after no-op confirm")
			return "", fmt.Errorf("service: failed to confirm payment: %w", err)
		}
		if exists {
			log.Warn().Str("transaction_id", transactionID).Msg("service: duplicate success callback")
			return "", ErrAlreadyPaid
		}
		log.Warn().Str("transaction_id", transactionID).Msg("service: success callback for unknown order")
		return "", ErrNotFound
	}

	log.Info().Str("transaction_id", transactionID).Msg("service: order paid")
	return s.clientURL("success", transactionID), nil
}

func (s *service) FailPayment(ctx context.Context, transactionID string) (string, error) {
	return s.dropPending(ctx, transactionID, "fail")
}

func (s *service) CancelPayment(ctx context.Context, transactionID string) (string, error) {
	return s.dropPending(ctx, transactionID, "cancel")
}

func (s *service) dropPending(ctx context.Context, transactionID, outcome string) (string, error) {
	n, err := s.repo.DeletePending(ctx, transactionID)
	if err != nil {
		log.Error().Err(err).Str("transaction_id", transactionID).Str("outcome", outcome).Msg("service: failed to delete order")
		return "", fmt.Errorf("service: failed to delete order on %s: %w", outcome, err)
	}
	if n == 0 {
		exists, err := s.repo.ExistsByTransactionID(ctx, transactionID)
		if err != nil {
			log.Error().Err(err).Str("transaction_id", transactionID).Str("outcome", outcome).Msg("service: failed to look up order after no-op delete")
			return "", fmt.Errorf("service: failed to delete order on %s: %w", outcome, err)
		}
		if exists {
			log.Warn().Str("transaction_id", transactionID).Str("outcome", outcome).Msg("service: callback for paid order ignored")
			return "", ErrAlreadyPaid
		}
		log.Warn().Str("transaction_id", transactionID).Str("outcome", outcome).Msg("service: callback for unknown order")
		return "", ErrNotFound
	}

	log.Info().Str("transaction_id", transactionID).Str("outcome", outcome).Msg("service: order removed")
	return s.clientURL(outcome, transactionID), nil
}

func (s *service) clientURL(outcome, transactionID string) string {
	return fmt.Sprintf("%s/payment/%s/%s", s.settings.ClientURL, outcome, transactionID)
}

func (s *service) ListOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list orders in repository")
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *service) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Stringer("order_id", id).Msg("service: order not found by id")
			return nil, ErrNotFound
		}
		log.Error().Err(err).Stringer("order_id", id).Msg("service: failed to fetch order by id in repository")
		return nil, fmt.Errorf("service: failed to fetch order by id: %w", err)
	}
	return o, nil
}

func (s *service) DeleteOrder(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Stringer("order_id", id).Msg("service: failed to delete order in repository")
		return nil, fmt.Errorf("service: failed to delete order: %w", err)
	}
	return res, nil
}
