package store

import (
	"context"
	"slices"
	"sync"

	"github.com/somahealth/vault-companion/internal/insight"
	"github.com/somahealth/vault-companion/internal/logger"
)

// defaultSources is returned for users who never set preferences.
var defaultSources = []string{insight.SourceMedical}

// preferenceRepository is the in-memory implementation of
// [PreferenceRepository]. Validation of source tags against the registry
// happens at the service boundary; the store itself stores what it is given.
type preferenceRepository struct {
	mu          sync.RWMutex
	preferences map[string][]string

	logger *logger.Logger
}

// NewPreferenceRepository constructs an empty in-memory [PreferenceRepository].
func NewPreferenceRepository(logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{
		preferences: make(map[string][]string),
		logger:      logger,
	}
}

func (r *preferenceRepository) Get(ctx context.Context, userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sources, ok := r.preferences[userID]
	if !ok {
		return slices.Clone(defaultSources)
	}

	return slices.Clone(sources)
}

func (r *preferenceRepository) Set(ctx context.Context, userID string, sources []string) []string {
	log := logger.FromContext(ctx)

	stored := slices.Clone(sources)

	r.mu.Lock()
	r.preferences[userID] = stored
	r.mu.Unlock()

	log.Debug().Str("user_id", userID).Strs("sources", stored).Msg("user preferences replaced")
	return slices.Clone(stored)
}
