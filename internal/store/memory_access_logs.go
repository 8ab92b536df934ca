package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/models"
)

// defaultAccessLogLimit caps result pages when the caller supplies none.
const defaultAccessLogLimit = 20

// accessLogRepository is the in-memory implementation of
// [AccessLogRepository]. Entries are append-only; queries sort newest
// first and paginate.
type accessLogRepository struct {
	mu      sync.RWMutex
	entries []models.AccessLog

	ids    IDGenerator
	logger *logger.Logger
}

// NewAccessLogRepository constructs an empty in-memory [AccessLogRepository].
func NewAccessLogRepository(ids IDGenerator, logger *logger.Logger) AccessLogRepository {
	logger.Debug().Msg("creating access log repository")
	return &accessLogRepository{
		ids:    ids,
		logger: logger,
	}
}

func (r *accessLogRepository) Append(ctx context.Context, entry models.AccessLog) models.AccessLog {
	entry.ID = r.ids.Generate()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.IPAddress == "" {
		entry.IPAddress = "Unknown"
	}
	if entry.DeviceInfo == "" {
		entry.DeviceInfo = "Unknown"
	}

	r.mu.Lock()
	r.entries = append(r.entries, entry)
	r.mu.Unlock()

	return entry
}

func (r *accessLogRepository) Find(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog {
	r.mu.RLock()

	matched := make([]models.AccessLog, 0)
	for _, entry := range r.entries {
		if filter.RecordID != "" && entry.RecordID != filter.RecordID {
			continue
		}
		if filter.StartDate != nil && entry.Timestamp.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && entry.Timestamp.After(*filter.EndDate) {
			continue
		}
		matched = append(matched, entry)
	}

	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultAccessLogLimit
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	offset := (page - 1) * limit
	if offset >= len(matched) {
		return []models.AccessLog{}
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end]
}
