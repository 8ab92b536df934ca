package service

import (
	"context"
	"fmt"
	"time"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/internal/validators"
	"github.com/somahealth/vault-companion/models"
)

// shareService is the concrete implementation of ShareService. It layers
// ownership checks on top of the share repository: only the record owner
// may create or revoke shares, and every operation first verifies that the
// target record exists.
type shareService struct {
	shares  store.ShareRepository
	records store.RecordRepository

	logger *logger.Logger
}

// NewShareService constructs a ShareService over the given repositories.
func NewShareService(shares store.ShareRepository, records store.RecordRepository, logger *logger.Logger) ShareService {
	return &shareService{
		shares:  shares,
		records: records,
		logger:  logger,
	}
}

// ShareRecord shares a record with another user. Returns
// store.ErrRecordNotFound when the record does not exist and
// ErrNotRecordOwner when the caller is not its owner.
func (s *shareService) ShareRecord(ctx context.Context, recordID string, req models.ShareRequest) (models.Share, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidateShareRequest(req); err != nil {
		return models.Share{}, err
	}

	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("share target lookup failed")
		return models.Share{}, fmt.Errorf("share target lookup failed: %w", err)
	}

	if record.UserID != req.OwnerID {
		log.Error().Str("record_id", recordID).Str("owner_id", req.OwnerID).Msg("share attempted by non-owner")
		return models.Share{}, ErrNotRecordOwner
	}

	var expiresAt *time.Time
	if req.ExpiresAt != "" {
		// validated as RFC 3339 above
		parsed, _ := time.Parse(time.RFC3339, req.ExpiresAt)
		expiresAt = &parsed
	}

	return s.shares.Create(ctx, recordID, req.OwnerID, req.RecipientID, req.PermissionLevel, expiresAt), nil
}

// SharedWithMe returns every active (non-expired) share granted to the
// user, joined with the shared records. Shares whose record has vanished
// are skipped.
func (s *shareService) SharedWithMe(ctx context.Context, userID string) ([]models.SharedRecord, error) {
	if userID == "" {
		errs := &models.ValidationErrors{}
		errs.Add("userId", validators.MsgUserIDRequired)
		return nil, errs
	}

	shares := s.shares.GetForRecipient(ctx, userID)

	sharedRecords := make([]models.SharedRecord, 0, len(shares))
	for _, share := range shares {
		record, err := s.records.GetByID(ctx, share.RecordID)
		if err != nil {
			continue
		}
		sharedRecords = append(sharedRecords, models.SharedRecord{
			Record:          record,
			SharedBy:        share.OwnerID,
			PermissionLevel: share.PermissionLevel,
			ExpiresAt:       share.ExpiresAt,
		})
	}

	return sharedRecords, nil
}

// RevokeShare removes the share granted on recordID to recipientID.
// Returns store.ErrRecordNotFound when the record does not exist,
// ErrNotRecordOwner when the caller is not its owner, and
// store.ErrShareNotFound when no matching share was stored.
func (s *shareService) RevokeShare(ctx context.Context, recordID, recipientID string, req models.RevokeShareRequest) error {
	log := logger.FromContext(ctx)

	if err := validators.ValidateRevokeShareRequest(req); err != nil {
		return err
	}

	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("revoke target lookup failed")
		return fmt.Errorf("revoke target lookup failed: %w", err)
	}

	if record.UserID != req.OwnerID {
		log.Error().Str("record_id", recordID).Str("owner_id", req.OwnerID).Msg("revoke attempted by non-owner")
		return ErrNotRecordOwner
	}

	if removed := s.shares.Remove(ctx, recordID, req.OwnerID, recipientID); !removed {
		return store.ErrShareNotFound
	}

	return nil
}

// CheckAccess reports whether userID holds an active share on recordID.
func (s *shareService) CheckAccess(ctx context.Context, recordID, userID string) (models.Share, bool) {
	return s.shares.CheckAccess(ctx, recordID, userID)
}
