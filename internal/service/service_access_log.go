package service

import (
	"context"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/models"
)

// accessLogService implements AccessLogService over the in-memory audit
// trail.
type accessLogService struct {
	accessLogs store.AccessLogRepository

	logger *logger.Logger
}

// NewAccessLogService constructs an AccessLogService over the given
// repository.
func NewAccessLogService(accessLogs store.AccessLogRepository, logger *logger.Logger) AccessLogService {
	return &accessLogService{
		accessLogs: accessLogs,
		logger:     logger,
	}
}

// Log appends one audit entry. Best effort: failures are logged and
// swallowed so the triggering request is never affected.
func (s *accessLogService) Log(ctx context.Context, entry models.AccessLog) {
	stored := s.accessLogs.Append(ctx, entry)

	logger.FromContext(ctx).Debug().
		Str("access_log_id", stored.ID).
		Str("record_id", stored.RecordID).
		Str("access_type", stored.AccessType).
		Msg("access logged")
}

// GetLogsForRecord returns the audit entries for one record, newest
// first, paginated by the filter.
func (s *accessLogService) GetLogsForRecord(ctx context.Context, recordID string, filter models.AccessLogFilter) []models.AccessLog {
	filter.RecordID = recordID
	return s.accessLogs.Find(ctx, filter)
}

// GetAllLogs returns audit entries across all records, newest first,
// paginated by the filter.
func (s *accessLogService) GetAllLogs(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog {
	filter.RecordID = ""
	return s.accessLogs.Find(ctx, filter)
}
