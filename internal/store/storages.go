package store

import "github.com/somahealth/vault-companion/internal/logger"

// Storages bundles every repository the application uses, built once per
// process and passed by reference into the service layer. Wrapping the
// module's shared state in explicit store types (instead of package-level
// singletons) keeps lifetime and test isolation under the caller's control.
type Storages struct {
	Records     RecordRepository
	Preferences PreferenceRepository
	Shares      ShareRepository
	AccessLogs  AccessLogRepository
}

// NewStorages constructs the full in-memory storage set.
func NewStorages(ids IDGenerator, logger *logger.Logger) *Storages {
	return &Storages{
		Records:     NewRecordRepository(ids, logger),
		Preferences: NewPreferenceRepository(logger),
		Shares:      NewShareRepository(ids, logger),
		AccessLogs:  NewAccessLogRepository(ids, logger),
	}
}
