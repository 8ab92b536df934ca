// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SomaHealth

package service

import (
	"context"
	"time"

	"github.com/somahealth/vault-companion/internal/store"
	"github.com/somahealth/vault-companion/models"
)

// ─────────────────────────────────────────────
// Mock: store.RecordRepository
// ─────────────────────────────────────────────

type mockRecordRepository struct {
	addFn         func(ctx context.Context, req models.RecordRequest) models.HealthRecord
	getByIDFn     func(ctx context.Context, id string) (models.HealthRecord, error)
	getByUserIDFn func(ctx context.Context, userID string) []models.HealthRecord
	updateFn      func(ctx context.Context, id string, req models.RecordRequest) models.HealthRecord
}

func (m *mockRecordRepository) Add(ctx context.Context, req models.RecordRequest) models.HealthRecord {
	if m.addFn != nil {
		return m.addFn(ctx, req)
	}
	return models.HealthRecord{}
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id string) (models.HealthRecord, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return models.HealthRecord{}, store.ErrRecordNotFound
}

func (m *mockRecordRepository) GetByUserID(ctx context.Context, userID string) []models.HealthRecord {
	if m.getByUserIDFn != nil {
		return m.getByUserIDFn(ctx, userID)
	}
	return nil
}

func (m *mockRecordRepository) Update(ctx context.Context, id string, req models.RecordRequest) models.HealthRecord {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, req)
	}
	return models.HealthRecord{}
}

// ─────────────────────────────────────────────
// Mock: store.PreferenceRepository
// ─────────────────────────────────────────────

type mockPreferenceRepository struct {
	getFn func(ctx context.Context, userID string) []string
	setFn func(ctx context.Context, userID string, sources []string) []string
}

func (m *mockPreferenceRepository) Get(ctx context.Context, userID string) []string {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return []string{"medical"}
}

func (m *mockPreferenceRepository) Set(ctx context.Context, userID string, sources []string) []string {
	if m.setFn != nil {
		return m.setFn(ctx, userID, sources)
	}
	return sources
}

// ─────────────────────────────────────────────
// Mock: store.ShareRepository
// ─────────────────────────────────────────────

type mockShareRepository struct {
	createFn          func(ctx context.Context, recordID, ownerID, recipientID, permissionLevel string, expiresAt *time.Time) models.Share
	getByRecordIDFn   func(ctx context.Context, recordID string) []models.Share
	getForRecipientFn func(ctx context.Context, recipientID string) []models.Share
	checkAccessFn     func(ctx context.Context, recordID, userID string) (models.Share, bool)
	removeFn          func(ctx context.Context, recordID, ownerID, recipientID string) bool
}

func (m *mockShareRepository) Create(ctx context.Context, recordID, ownerID, recipientID, permissionLevel string, expiresAt *time.Time) models.Share {
	if m.createFn != nil {
		return m.createFn(ctx, recordID, ownerID, recipientID, permissionLevel, expiresAt)
	}
	return models.Share{}
}

func (m *mockShareRepository) GetByRecordID(ctx context.Context, recordID string) []models.Share {
	if m.getByRecordIDFn != nil {
		return m.getByRecordIDFn(ctx, recordID)
	}
	return nil
}

func (m *mockShareRepository) GetForRecipient(ctx context.Context, recipientID string) []models.Share {
	if m.getForRecipientFn != nil {
		return m.getForRecipientFn(ctx, recipientID)
	}
	return nil
}

func (m *mockShareRepository) CheckAccess(ctx context.Context, recordID, userID string) (models.Share, bool) {
	if m.checkAccessFn != nil {
		return m.checkAccessFn(ctx, recordID, userID)
	}
	return models.Share{}, false
}

func (m *mockShareRepository) Remove(ctx context.Context, recordID, ownerID, recipientID string) bool {
	if m.removeFn != nil {
		return m.removeFn(ctx, recordID, ownerID, recipientID)
	}
	return false
}

// ─────────────────────────────────────────────
// Mock: store.AccessLogRepository
// ─────────────────────────────────────────────

type mockAccessLogRepository struct {
	appendFn func(ctx context.Context, entry models.AccessLog) models.AccessLog
	findFn   func(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog
}

func (m *mockAccessLogRepository) Append(ctx context.Context, entry models.AccessLog) models.AccessLog {
	if m.appendFn != nil {
		return m.appendFn(ctx, entry)
	}
	return entry
}

func (m *mockAccessLogRepository) Find(ctx context.Context, filter models.AccessLogFilter) []models.AccessLog {
	if m.findFn != nil {
		return m.findFn(ctx, filter)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: InsightEngine
// ─────────────────────────────────────────────

type mockInsightEngine struct {
	generateFn func(record models.HealthRecord, enabledSources []string) *models.InsightMap
	calls      int
}

func (m *mockInsightEngine) GenerateInsights(record models.HealthRecord, enabledSources []string) *models.InsightMap {
	m.calls++
	if m.generateFn != nil {
		return m.generateFn(record, enabledSources)
	}
	return models.NewInsightMap()
}
