package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driving"
	"github.com/custodia-labs/kith-cli/internal/logger"
)

// Ensure BackupService implements the interface.
var _ driving.BackupService = (*BackupService)(nil)

// BackupService moves all user data in and out as a domain.Snapshot.
type BackupService struct {
	checkIns   driven.CheckInStore
	contacts   driven.ContactStore
	categories driven.CategoryStore
	clock      domain.Clock
}

// NewBackupService creates a new backup service.
func NewBackupService(
	checkIns driven.CheckInStore,
	contacts driven.ContactStore,
	categories driven.CategoryStore,
	clock domain.Clock,
) *BackupService {
	return &BackupService{
		checkIns:   checkIns,
		contacts:   contacts,
		categories: categories,
		clock:      clock,
	}
}

func (s *BackupService) ready() error {
	if s.checkIns == nil || s.contacts == nil || s.categories == nil {
		return domain.ErrNotImplemented
	}
	return nil
}

// Export captures every category, contact and check-in.
func (s *BackupService) Export(ctx context.Context) (*domain.Snapshot, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	checkIns, err := s.checkIns.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	domain.SortCategoriesByName(categories)
	domain.SortContactsByName(contacts)
	domain.SortByScheduledDate(checkIns)

	snapshot := &domain.Snapshot{
		Version:    domain.SnapshotVersion,
		ExportedAt: s.clock.Now(),
		Categories: make([]domain.SnapshotCategory, 0, len(categories)),
		Contacts:   make([]domain.SnapshotContact, 0, len(contacts)),
		CheckIns:   make([]domain.SnapshotCheckIn, 0, len(checkIns)),
	}
	for i := range categories {
		snapshot.Categories = append(snapshot.Categories, domain.SnapshotFromCategory(categories[i]))
	}
	for i := range contacts {
		snapshot.Contacts = append(snapshot.Contacts, domain.SnapshotFromContact(contacts[i]))
	}
	for _, c := range checkIns {
		snapshot.CheckIns = append(snapshot.CheckIns, domain.SnapshotFromCheckIn(c.Record()))
	}

	logger.Debug("exported %d categories, %d contacts, %d check-ins",
		len(snapshot.Categories), len(snapshot.Contacts), len(snapshot.CheckIns))
	return snapshot, nil
}

// Import upserts categories, then contacts, then check-ins.
// The whole snapshot is decoded, and every contact and category reference
// resolved against the snapshot or the stores, before anything is written,
// so a malformed record leaves the stores untouched.
func (s *BackupService) Import(ctx context.Context, snapshot *domain.Snapshot) (*domain.ImportResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(snapshot.Categories))
	for i, sc := range snapshot.Categories {
		c, err := sc.Category()
		if err != nil {
			return nil, fmt.Errorf("category %d: %w", i, err)
		}
		categories = append(categories, c)
	}
	contacts := make([]domain.Contact, 0, len(snapshot.Contacts))
	for i, sc := range snapshot.Contacts {
		c, err := sc.Contact()
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i, err)
		}
		contacts = append(contacts, c)
	}
	records := make([]domain.CheckInRecord, 0, len(snapshot.CheckIns))
	for i, sc := range snapshot.CheckIns {
		rec, err := sc.Record()
		if err != nil {
			return nil, fmt.Errorf("check-in %d: %w", i, err)
		}
		records = append(records, rec)
	}

	if err := s.checkReferences(ctx, categories, contacts, records); err != nil {
		return nil, err
	}

	result := &domain.ImportResult{}
	for i := range categories {
		if err := s.categories.Save(ctx, categories[i]); err != nil {
			return result, fmt.Errorf("save category %s: %w", categories[i].ID, err)
		}
		result.Categories++
	}
	for i := range contacts {
		if err := s.contacts.Save(ctx, contacts[i]); err != nil {
			return result, fmt.Errorf("save contact %s: %w", contacts[i].ID, err)
		}
		result.Contacts++
	}
	now := s.clock.Now()
	for _, rec := range records {
		if err := s.checkIns.Save(ctx, domain.RestoreCheckIn(rec, now)); err != nil {
			return result, fmt.Errorf("save check-in %s: %w", rec.ID, err)
		}
		result.CheckIns++
	}

	logger.Info("imported %d categories, %d contacts, %d check-ins",
		result.Categories, result.Contacts, result.CheckIns)
	return result, nil
}

// checkReferences rejects contacts pointing at unknown categories and
// check-ins pointing at unknown contacts.
func (s *BackupService) checkReferences(
	ctx context.Context,
	categories []domain.Category,
	contacts []domain.Contact,
	records []domain.CheckInRecord,
) error {
	knownCategories := make(map[domain.CategoryID]bool, len(categories))
	for i := range categories {
		knownCategories[categories[i].ID] = true
	}
	for i := range contacts {
		id := contacts[i].CategoryID
		if id.IsZero() || knownCategories[id] {
			continue
		}
		ok, err := exists(s.categories.Get(ctx, id))
		if err != nil {
			return fmt.Errorf("get category %s: %w", id, err)
		}
		if !ok {
			return &domain.ValidationError{
				Field:  "contact " + contacts[i].ID.String(),
				Reason: fmt.Sprintf("unknown category %s", id),
			}
		}
		knownCategories[id] = true
	}

	knownContacts := make(map[domain.ContactID]bool, len(contacts))
	for i := range contacts {
		knownContacts[contacts[i].ID] = true
	}
	for _, rec := range records {
		if knownContacts[rec.ContactID] {
			continue
		}
		ok, err := exists(s.contacts.Get(ctx, rec.ContactID))
		if err != nil {
			return fmt.Errorf("get contact %s: %w", rec.ContactID, err)
		}
		if !ok {
			return &domain.ValidationError{
				Field:  "check-in " + rec.ID.String(),
				Reason: fmt.Sprintf("unknown contact %s", rec.ContactID),
			}
		}
		knownContacts[rec.ContactID] = true
	}
	return nil
}

// exists folds a store lookup into found / not found / error.
func exists[T any](_ T, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
