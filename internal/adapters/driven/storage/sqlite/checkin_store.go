package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

// checkInStore implements driven.CheckInStore.
// Only the record columns are stored; status is derived on every read.
type checkInStore struct {
	store *Store
}

var _ driven.CheckInStore = (*checkInStore)(nil)

const checkInColumns = `id, contact_id, scheduled_at, completed_at, notes`

// Save stores or fully replaces a check-in.
func (s *checkInStore) Save(ctx context.Context, checkIn domain.CheckIn) error {
	rec := checkIn.Record()
	if rec.ID == "" {
		return domain.ErrInvalidInput
	}

	var completedAt any
	if rec.CompletionDate.IsSet() {
		completedAt = unixNanos(rec.CompletionDate.Time())
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO check_ins (`+checkInColumns+`)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			contact_id = excluded.contact_id,
			scheduled_at = excluded.scheduled_at,
			completed_at = excluded.completed_at,
			notes = excluded.notes
	`, rec.ID.String(), rec.ContactID.String(), unixNanos(rec.ScheduledDate.Time()),
		completedAt, nullString(rec.Notes.String()))
	if err != nil {
		return fmt.Errorf("saving check-in: %w", err)
	}
	return nil
}

// Get retrieves a check-in by ID.
func (s *checkInStore) Get(ctx context.Context, id domain.CheckInID) (*domain.CheckIn, error) {
	row := s.store.db.QueryRowContext(ctx,
		`SELECT `+checkInColumns+` FROM check_ins WHERE id = ?`, id.String())

	rec, err := s.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	checkIn := domain.RestoreCheckIn(rec, s.store.clock.Now())
	return &checkIn, nil
}

// List returns all check-ins ordered by scheduled date.
func (s *checkInStore) List(ctx context.Context) ([]domain.CheckIn, error) {
	return s.query(ctx, s.store.clock.Now(), `
		SELECT `+checkInColumns+` FROM check_ins
		ORDER BY scheduled_at, id
	`)
}

// ListByContact returns a contact's check-ins ordered by scheduled date.
func (s *checkInStore) ListByContact(ctx context.Context, contactID domain.ContactID) ([]domain.CheckIn, error) {
	return s.query(ctx, s.store.clock.Now(), `
		SELECT `+checkInColumns+` FROM check_ins
		WHERE contact_id = ?
		ORDER BY scheduled_at, id
	`, contactID.String())
}

// ListByStatus filters on the columns status is derived from, using the
// same instant for the filter and the rebuilt entities.
func (s *checkInStore) ListByStatus(ctx context.Context, status domain.CheckInStatus) ([]domain.CheckIn, error) {
	now := s.store.clock.Now()

	var where string
	var args []any
	switch status {
	case domain.StatusCompleted:
		where = `completed_at IS NOT NULL`
	case domain.StatusOverdue:
		where = `completed_at IS NULL AND scheduled_at < ?`
		args = append(args, unixNanos(now))
	case domain.StatusScheduled:
		where = `completed_at IS NULL AND scheduled_at >= ?`
		args = append(args, unixNanos(now))
	default:
		return nil, &domain.ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", status)}
	}

	return s.query(ctx, now, `
		SELECT `+checkInColumns+` FROM check_ins
		WHERE `+where+`
		ORDER BY scheduled_at, id
	`, args...)
}

// ListByDateRange returns check-ins scheduled within [start, end].
func (s *checkInStore) ListByDateRange(ctx context.Context, start, end time.Time) ([]domain.CheckIn, error) {
	return s.query(ctx, s.store.clock.Now(), `
		SELECT `+checkInColumns+` FROM check_ins
		WHERE scheduled_at BETWEEN ? AND ?
		ORDER BY scheduled_at, id
	`, unixNanos(start), unixNanos(end))
}

// Delete removes a check-in.
func (s *checkInStore) Delete(ctx context.Context, id domain.CheckInID) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM check_ins WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("deleting check-in: %w", err)
	}
	return nil
}

func (s *checkInStore) query(ctx context.Context, now time.Time, query string, args ...any) ([]domain.CheckIn, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []domain.CheckIn //nolint:prealloc // size unknown from query
	for rows.Next() {
		rec, err := s.scan(rows)
		if err != nil {
			return nil, err
		}
		checkIns = append(checkIns, domain.RestoreCheckIn(rec, now))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating check-ins: %w", err)
	}
	return checkIns, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *checkInStore) scan(row rowScanner) (domain.CheckInRecord, error) {
	var id, contactID string
	var scheduledAt int64
	var completedAt sql.NullInt64
	var notes sql.NullString

	if err := row.Scan(&id, &contactID, &scheduledAt, &completedAt, &notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CheckInRecord{}, err
		}
		return domain.CheckInRecord{}, fmt.Errorf("scanning check-in: %w", err)
	}

	scheduled, err := domain.NewScheduledDate(s.store.fromUnixNanos(scheduledAt))
	if err != nil {
		return domain.CheckInRecord{}, fmt.Errorf("check-in %s: %w", id, err)
	}
	rec := domain.CheckInRecord{
		ID:            domain.CheckInID(id),
		ContactID:     domain.ContactID(contactID),
		ScheduledDate: scheduled,
		Notes:         domain.CheckInNotes(notes.String),
	}
	if completedAt.Valid {
		if rec.CompletionDate, err = domain.NewCompletionDate(s.store.fromUnixNanos(completedAt.Int64)); err != nil {
			return domain.CheckInRecord{}, fmt.Errorf("check-in %s: %w", id, err)
		}
	}
	return rec, nil
}
