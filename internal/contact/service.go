package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/portfolio-api/internal/db"
	"github.com/vasiliy-maslov/portfolio-api/internal/stamp"
)

type Service interface {
	// CreateContact stores the submission and notifies the owner without waiting for delivery.
	CreateContact(ctx context.Context, c *Contact) (*db.InsertResult, error)
	ListContacts(ctx context.Context) ([]Contact, error)
	GetContactByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	UpsertContact(ctx context.Context, c *Contact) (*db.UpdateResult, error)
	DeleteContact(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error)
}

type OwnerNotifier interface {
	Notify(ctx context.Context, c Contact)
}

type service struct {
	repo     Repository
	stamper  *stamp.Stamper
	notifier OwnerNotifier
}

func NewService(repo Repository, stamper *stamp.Stamper, notifier OwnerNotifier) Service {
	return &service{repo: repo, stamper: stamper, notifier: notifier}
}

func (s *service) CreateContact(ctx context.Context, c *Contact) (*db.InsertResult, error) {
	c.ID = uuid.Nil
	now := s.stamper.Now()
	c.UpTime, c.UpDate = now.Time, now.Date

	s.notifier.Notify(ctx, *c)

	res, err := s.repo.Create(ctx, c)
	if err != nil {
		log.Error().Err(err).Str("email", c.Email).Msg("service: failed to create contact in repository")
		return nil, fmt.Errorf("service: failed to create contact: %w", err)
	}

	log.Info().Stringer("contact_id", res.InsertedID).Msg("service: contact created")
	return res, nil
}

func (s *service) ListContacts(ctx context.Context) ([]Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list contacts in repository")
		return nil, fmt.Errorf("service: failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *service) GetContactByID(ctx context.Context, id uuid.UUID) (*Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Stringer("contact_id", id).Msg("service: contact not found by id")
			return nil, ErrNotFound
		}
		log.Error().Err(err).Stringer("contact_id", id).Msg("service: failed to fetch contact by id in repository")
		return nil, fmt.Errorf("service: failed to fetch contact by id: %w", err)
	}
	return c, nil
}

func (s *service) UpsertContact(ctx context.Context, c *Contact) (*db.UpdateResult, error) {
	now := s.stamper.Now()
	c.UpTime, c.UpDate = now.Time, now.Date

	res, err := s.repo.Upsert(ctx, c)
	if err != nil {
		log.Error().Err(err).Stringer("contact_id", c.ID).Msg("service: failed to upsert contact in repository")
		return nil, fmt.Errorf("service: failed to update contact: %w", err)
	}
	return res, nil
}

func (s *service) DeleteContact(ctx context.Context, id uuid.UUID) (*db.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Stringer("contact_id", id).Msg("service: failed to delete contact in repository")
		return nil, fmt.Errorf("service: failed to delete contact: %w", err)
	}
	return res, nil
}
