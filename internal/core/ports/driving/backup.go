package driving

import (
	"context"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// BackupService exports and imports all user data.
type BackupService interface {
	// Export captures every contact, category and check-in.
	Export(ctx context.Context) (*domain.Snapshot, error)

	// Import upserts every record in the snapshot.
	Import(ctx context.Context, snapshot *domain.Snapshot) (*domain.ImportResult, error)
}
