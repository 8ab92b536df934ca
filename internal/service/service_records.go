package service

import (
	"context"
	"fmt"

	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/internal/validators"
	"github.com/somahealth/vault-companion/models"
)

// recordService is the concrete implementation of RecordService. It wraps
// the record repository with request validation and, for opinion-mode
// reads, decorates records with insights generated from the record owner's
// currently enabled knowledge sources.
type recordService struct {
	records     store.RecordRepository
	preferences store.PreferenceRepository
	engine      InsightEngine

	logger *logger.Logger
}

// NewRecordService constructs a RecordService over the given repositories
// and insight engine.
func NewRecordService(records store.RecordRepository, preferences store.PreferenceRepository, engine InsightEngine, logger *logger.Logger) RecordService {
	return &recordService{
		records:     records,
		preferences: preferences,
		engine:      engine,
		logger:      logger,
	}
}

// GetRecords returns all records owned by userID. In opinion mode every
// record is decorated with insights; in data mode records are returned
// exactly as stored.
func (s *recordService) GetRecords(ctx context.Context, userID string, mode models.Mode) ([]models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	records := s.records.GetByUserID(ctx, userID)
	log.Debug().Str("user_id", userID).Str("mode", string(mode)).Int("count", len(records)).Msg("records fetched")

	if mode != models.ModeOpinion {
		return records, nil
	}

	sources := s.preferences.Get(ctx, userID)
	for i := range records {
		records[i].Insights = s.engine.GenerateInsights(records[i], sources)
	}

	return records, nil
}

// GetRecord returns a single record by id, decorated with insights in
// opinion mode. The insight computation uses the record owner's
// preferences, not the caller's.
func (s *recordService) GetRecord(ctx context.Context, recordID string, mode models.Mode) (models.HealthRecord, error) {
	log := logger.FromContext(ctx)

	record, err := s.records.GetByID(ctx, recordID)
	if err != nil {
		log.Err(err).Str("record_id", recordID).Msg("record lookup failed")
		return models.HealthRecord{}, fmt.Errorf("record lookup failed: %w", err)
	}

	if mode != models.ModeOpinion {
		return record, nil
	}

	sources := s.preferences.Get(ctx, record.UserID)
	record.Insights = s.engine.GenerateInsights(record, sources)

	return record, nil
}

// AddRecord validates the payload and creates a new record.
func (s *recordService) AddRecord(ctx context.Context, req models.RecordRequest) (models.HealthRecord, error) {
	if err := validators.ValidateRecordRequest(req); err != nil {
		return models.HealthRecord{}, err
	}

	return s.records.Add(ctx, req), nil
}

// UpdateRecord validates the payload and updates the record in place.
// An unmatched record id creates a new record under that exact id — the
// update path is deliberately an upsert, so callers can rely on a PUT
// always producing a retrievable record.
func (s *recordService) UpdateRecord(ctx context.Context, recordID string, req models.RecordRequest) (models.HealthRecord, error) {
	if err := validators.ValidateRecordRequest(req); err != nil {
		return models.HealthRecord{}, err
	}

	return s.records.Update(ctx, recordID, req), nil
}
