package service

import (
	"context"
	"fmt"

	"github.com/somahealth/vault-companion/internal/insight"
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/internal/validators"
	"github.com/somahealth/vault-companion/models"
)

// preferenceService is the concrete implementation of PreferenceService.
// Unlike the store, it validates incoming source tags against the
// knowledge-source registry and rejects unknown ones, so bogus tags never
// reach the stored preference set.
type preferenceService struct {
	preferences store.PreferenceRepository

	logger *logger.Logger
}

// NewPreferenceService constructs a PreferenceService over the given
// repository.
func NewPreferenceService(preferences store.PreferenceRepository, logger *logger.Logger) PreferenceService {
	return &preferenceService{
		preferences: preferences,
		logger:      logger,
	}
}

// GetPreferences returns the user's enabled knowledge sources, or the
// default of ["medical"] when none were ever set.
func (s *preferenceService) GetPreferences(ctx context.Context, userID string) []string {
	return s.preferences.Get(ctx, userID)
}

// UpdatePreferences replaces the user's enabled knowledge sources
// wholesale. Every tag must be a member of the registry; an unknown tag
// rejects the whole request with ErrUnknownKnowledgeSource.
func (s *preferenceService) UpdatePreferences(ctx context.Context, userID string, req models.PreferencesRequest) ([]string, error) {
	log := logger.FromContext(ctx)

	if err := validators.ValidatePreferencesRequest(req); err != nil {
		return nil, err
	}

	for _, tag := range req.Sources {
		if !insight.IsKnownSource(tag) {
			log.Error().Str("user_id", userID).Str("tag", tag).Msg("rejecting unknown knowledge source")
			return nil, fmt.Errorf("%w: %q", ErrUnknownKnowledgeSource, tag)
		}
	}

	return s.preferences.Set(ctx, userID, req.Sources), nil
}
