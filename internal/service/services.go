package service

import (
	"github.com/somahealth/vault-companion/internal/config"
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/internal/store"
)

// Services bundles every business-logic service the handlers depend on.
type Services struct {
	RecordService     RecordService
	PreferenceService PreferenceService
	ShareService      ShareService
	AuthService       AuthService
	AccessLogService  AccessLogService
}

// NewServices wires the service layer over the storage set.
func NewServices(storages *store.Storages, engine InsightEngine, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		RecordService:     NewRecordService(storages.Records, storages.Preferences, engine, logger),
		PreferenceService: NewPreferenceService(storages.Preferences, logger),
		ShareService:      NewShareService(storages.Shares, storages.Records, logger),
		AuthService:       NewAuthService(cfg.App, logger),
		AccessLogService:  NewAccessLogService(storages.AccessLogs, logger),
	}
}
