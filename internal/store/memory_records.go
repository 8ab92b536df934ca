package store

import (
	"context"
	"sync"
	"time"

	"github.com/somahealth/vault-companion/internal/insight"
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/models"
)

// recordRepository is the in-memory implementation of [RecordRepository].
// A slice keeps insertion order for per-user listings; lookups are linear,
// which is fine at demo scale. A single RWMutex guards all access since
// requests are handled concurrently.
type recordRepository struct {
	mu      sync.RWMutex
	records []models.HealthRecord

	ids    IDGenerator
	logger *logger.Logger
}

// NewRecordRepository constructs an empty in-memory [RecordRepository].
func NewRecordRepository(ids IDGenerator, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		ids:    ids,
		logger: logger,
	}
}

func (r *recordRepository) Add(ctx context.Context, req models.RecordRequest) models.HealthRecord {
	log := logger.FromContext(ctx)

	record := newRecord(r.ids.Generate(), req)

	r.mu.Lock()
	r.records = append(r.records, record)
	total := len(r.records)
	r.mu.Unlock()

	log.Debug().Str("id", record.ID).Str("user_id", record.UserID).Int("total", total).Msg("health record added")
	return record.Clone()
}

func (r *recordRepository) GetByID(ctx context.Context, id string) (models.HealthRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.records {
		if r.records[i].ID == id {
			return r.records[i].Clone(), nil
		}
	}

	return models.HealthRecord{}, ErrRecordNotFound
}

func (r *recordRepository) GetByUserID(ctx context.Context, userID string) []models.HealthRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.HealthRecord, 0)
	for i := range r.records {
		if r.records[i].UserID == userID {
			records = append(records, r.records[i].Clone())
		}
	}

	return records
}

func (r *recordRepository) Update(ctx context.Context, id string, req models.RecordRequest) models.HealthRecord {
	log := logger.FromContext(ctx)

	// No id at all degenerates into a plain add.
	if id == "" {
		log.Debug().Msg("no record id provided, creating new record")
		return r.Add(ctx, req)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].ID != id {
			continue
		}

		existing := &r.records[i]
		existing.UserID = req.UserID
		existing.RecordType = req.RecordType
		existing.Title = req.Title
		existing.Content = req.Content
		existing.Date = models.ResolveDate(req.Content, time.Now())
		if req.Specialty != "" {
			existing.Specialty = req.Specialty
		}

		log.Debug().Str("id", id).Msg("health record updated")
		return existing.Clone()
	}

	// Unmatched id upserts a new record under that exact id.
	record := newRecord(id, req)
	r.records = append(r.records, record)

	log.Debug().Str("id", id).Msg("health record not found, created by update")
	return record.Clone()
}

// newRecord builds a record from a request, applying the specialty default
// and date derivation shared by Add and the upsert branch of Update.
func newRecord(id string, req models.RecordRequest) models.HealthRecord {
	specialty := req.Specialty
	if specialty == "" {
		specialty = insight.SpecialtyMedical
	}

	return models.HealthRecord{
		ID:         id,
		UserID:     req.UserID,
		RecordType: req.RecordType,
		Specialty:  specialty,
		Title:      req.Title,
		Content:    req.Content,
		Date:       models.ResolveDate(req.Content, time.Now()),
	}
}
