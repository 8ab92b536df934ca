package store

import (
	"context"
	"sync"
	"time"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/models"
)

// shareRepository is the in-memory implementation of [ShareRepository].
// Expired shares are filtered on every read but deliberately kept in the
// slice: expiry is a read-time property, not a deletion.
type shareRepository struct {
	mu     sync.RWMutex
	shares []models.Share

	ids    IDGenerator
	logger *logger.Logger
}

// NewShareRepository constructs an empty in-memory [ShareRepository].
func NewShareRepository(ids IDGenerator, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		ids:    ids,
		logger: logger,
	}
}

func (r *shareRepository) Create(ctx context.Context, recordID, ownerID, recipientID, permissionLevel string, expiresAt *time.Time) models.Share {
	log := logger.FromContext(ctx)

	share := models.Share{
		ID:              r.ids.Generate(),
		RecordID:        recordID,
		OwnerID:         ownerID,
		RecipientID:     recipientID,
		PermissionLevel: permissionLevel,
		ExpiresAt:       expiresAt,
		CreatedAt:       time.Now().UTC(),
	}

	r.mu.Lock()
	r.shares = append(r.shares, share)
	r.mu.Unlock()

	log.Debug().Str("id", share.ID).Str("record_id", recordID).Str("recipient_id", recipientID).Msg("share created")
	return share
}

func (r *shareRepository) GetByRecordID(ctx context.Context, recordID string) []models.Share {
	now := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	shares := make([]models.Share, 0)
	for _, share := range r.shares {
		if share.RecordID == recordID && !share.IsExpired(now) {
			shares = append(shares, share)
		}
	}

	return shares
}

func (r *shareRepository) GetForRecipient(ctx context.Context, recipientID string) []models.Share {
	now := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	shares := make([]models.Share, 0)
	for _, share := range r.shares {
		if share.RecipientID == recipientID && !share.IsExpired(now) {
			shares = append(shares, share)
		}
	}

	return shares
}

func (r *shareRepository) CheckAccess(ctx context.Context, recordID, userID string) (models.Share, bool) {
	now := time.Now()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, share := range r.shares {
		if share.RecordID == recordID && share.RecipientID == userID && !share.IsExpired(now) {
			return share, true
		}
	}

	return models.Share{}, false
}

func (r *shareRepository) Remove(ctx context.Context, recordID, ownerID, recipientID string) bool {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.shares[:0]
	for _, share := range r.shares {
		if share.RecordID == recordID && share.OwnerID == ownerID && share.RecipientID == recipientID {
			continue
		}
		kept = append(kept, share)
	}

	removed := len(kept) < len(r.shares)
	r.shares = kept

	log.Debug().Str("record_id", recordID).Str("recipient_id", recipientID).Bool("removed", removed).Msg("share revoke processed")
	return removed
}
