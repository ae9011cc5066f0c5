package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// Ensure ContactStore implements the interface.
var _ driven.ContactStore = (*ContactStore)(nil)

// ContactStore is an in-memory implementation of driven.ContactStore.
type ContactStore struct {
	mu       sync.RWMutex
	contacts map[domain.ContactID]domain.Contact
}

// NewContactStore creates a new in-memory contact store.
func NewContactStore() *ContactStore {
	return &ContactStore{
		contacts: make(map[domain.ContactID]domain.Contact),
	}
}

// Save stores or updates a contact.
func (s *ContactStore) Save(_ context.Context, contact domain.Contact) error {
	if contact.ID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[contact.ID] = contact
	return nil
}

// Get retrieves a contact by ID.
func (s *ContactStore) Get(_ context.Context, id domain.ContactID) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contact, ok := s.contacts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &contact, nil
}

// List returns all contacts.
func (s *ContactStore) List(_ context.Context) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Contact, 0, len(s.contacts))
	for _, contact := range s.contacts {
		result = append(result, contact)
	}
	domain.SortContactsByName(result)
	return result, nil
}

// Delete removes a contact.
func (s *ContactStore) Delete(_ context.Context, id domain.ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.contacts, id)
	return nil
}

// Search returns contacts matching query.
func (s *ContactStore) Search(_ context.Context, query string) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Contact, 0)
	for _, contact := range s.contacts {
		if contact.Matches(query) {
			result = append(result, contact)
		}
	}
	domain.SortContactsByName(result)
	return result, nil
}
