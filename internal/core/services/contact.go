package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kith-cli/internal/logger"
)

// Ensure ContactService implements the interface.
var _ driving.ContactService = (*ContactService)(nil)

// ContactService manages contacts and keeps their check-ins in step.
type ContactService struct {
	contacts   driven.ContactStore
	categories driven.CategoryStore
	checkIns   driven.CheckInStore
	scheduler  driving.CheckInService
	clock      domain.Clock
}

// NewContactService creates a new contact service.
// scheduler is used to book the first check-in of categorized contacts and
// may be nil to skip that step.
func NewContactService(
	contacts driven.ContactStore,
	categories driven.CategoryStore,
	checkIns driven.CheckInStore,
	scheduler driving.CheckInService,
	clock domain.Clock,
) *ContactService {
	return &ContactService{
		contacts:   contacts,
		categories: categories,
		checkIns:   checkIns,
		scheduler:  scheduler,
		clock:      clock,
	}
}

// Create stores a new contact and books its first check-in when it has a category.
func (s *ContactService) Create(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}

	contact.Name = strings.TrimSpace(contact.Name)
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, contact.CategoryID); err != nil {
		return nil, err
	}

	if contact.ID == "" {
		contact.ID = domain.NewContactID()
	} else if _, err := s.contacts.Get(ctx, contact.ID); err == nil {
		return nil, fmt.Errorf("contact %s: %w", contact.ID, domain.ErrAlreadyExists)
	}

	now := s.clock.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, fmt.Errorf("save contact: %w", err)
	}
	logger.Debug("created contact %s (%s)", contact.ID, contact.Name)

	if contact.IsCategorized() && s.scheduler != nil {
		if _, err := s.scheduler.ScheduleInitialCheckIn(ctx, driving.ScheduleInitialInput{ContactID: contact.ID}); err != nil {
			return nil, fmt.Errorf("schedule first check-in for %s: %w", contact.ID, err)
		}
	}
	return &contact, nil
}

// Update modifies an existing contact. A contact that gains a category and
// has no open check-in gets one scheduled.
func (s *ContactService) Update(ctx context.Context, contact domain.Contact) (*domain.Contact, error) {
	if s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}

	existing, err := s.Get(ctx, contact.ID)
	if err != nil {
		return nil, err
	}

	contact.Name = strings.TrimSpace(contact.Name)
	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, contact.CategoryID); err != nil {
		return nil, err
	}

	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = s.clock.Now()
	if err := s.contacts.Save(ctx, contact); err != nil {
		return nil, fmt.Errorf("save contact %s: %w", contact.ID, err)
	}

	if contact.IsCategorized() && !existing.IsCategorized() {
		if err := s.scheduleIfIdle(ctx, contact.ID); err != nil {
			return nil, err
		}
	}
	return &contact, nil
}

// Get retrieves a contact by ID.
func (s *ContactService) Get(ctx context.Context, id domain.ContactID) (*domain.Contact, error) {
	if s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}
	contact, err := s.contacts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("contact %s: %w", id, err)
	}
	return contact, nil
}

// List returns all contacts sorted by name.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	if s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	domain.SortContactsByName(contacts)
	return contacts, nil
}

// Search returns contacts matching query, sorted by name.
func (s *ContactService) Search(ctx context.Context, query string) ([]domain.Contact, error) {
	if s.contacts == nil {
		return nil, domain.ErrNotImplemented
	}
	contacts, err := s.contacts.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	domain.SortContactsByName(contacts)
	return contacts, nil
}

// Delete removes a contact after its check-ins.
func (s *ContactService) Delete(ctx context.Context, id domain.ContactID) error {
	if s.contacts == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	// Cleanup: check-ins first, then the contact
	if s.checkIns != nil {
		checkIns, err := s.checkIns.ListByContact(ctx, id)
		if err == nil {
			for i := range checkIns {
				if delErr := s.checkIns.Delete(ctx, checkIns[i].ID()); delErr != nil {
					logger.Warn("failed to delete check-in %s: %v", checkIns[i].ID(), delErr)
				}
			}
		}
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact %s: %w", id, err)
	}
	return nil
}

func (s *ContactService) checkCategory(ctx context.Context, id domain.CategoryID) error {
	if id.IsZero() {
		return nil
	}
	if s.categories == nil {
		return domain.ErrNotImplemented
	}
	if _, err := s.categories.Get(ctx, id); err != nil {
		return fmt.Errorf("category %s: %w", id, err)
	}
	return nil
}

func (s *ContactService) scheduleIfIdle(ctx context.Context, id domain.ContactID) error {
	if s.scheduler == nil || s.checkIns == nil {
		return nil
	}
	checkIns, err := s.checkIns.ListByContact(ctx, id)
	if err != nil {
		return fmt.Errorf("list check-ins for contact %s: %w", id, err)
	}
	for i := range checkIns {
		if !checkIns[i].IsCompleted() {
			return nil
		}
	}
	if _, err := s.scheduler.ScheduleInitialCheckIn(ctx, driving.ScheduleInitialInput{ContactID: id}); err != nil {
		return fmt.Errorf("schedule first check-in for %s: %w", id, err)
	}
	return nil
}
