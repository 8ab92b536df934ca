package models

import (
	"maps"
	"time"
)

// HealthRecord is a single entry in a user's health vault: a consultation
// note, a lab result, an imaging report, and so on. Records are classified
// on two tiers — Specialty (who produced it) and RecordType (what it is).
type HealthRecord struct {
	// ID is the unique identifier of the record within the store.
	ID string `json:"id"`

	// UserID identifies the owner of the record.
	UserID string `json:"userId"`

	// RecordType is the second-tier classification (e.g. "consultation",
	// "laboratory", "imaging"). Legacy type names such as "bloodwork" are
	// kept as stored; alias resolution happens in the insight layer.
	RecordType string `json:"recordType"`

	// Specialty is the first-tier classification (e.g. "medical",
	// "physiotherapy", "massage"). Defaults to "medical" on creation.
	Specialty string `json:"specialty"`

	// Title is the display name of the record.
	Title string `json:"title"`

	// Content is the free-form structured payload of the record: dates,
	// provider, findings, follow-up details. At minimum it carries a "date"
	// entry; everything else is provider-specific.
	Content map[string]any `json:"content"`

	// Date is the record's effective date, derived from Content["date"]
	// or the record creation time when the content carries no date.
	Date string `json:"date"`

	// Insights holds the per-perspective opinion payload computed for
	// opinion-mode reads. It is never persisted: nil for data-mode reads,
	// non-nil (possibly empty) for opinion-mode reads.
	Insights *InsightMap `json:"insights,omitempty"`
}

// Clone returns a copy of the record with its own Content map, so that
// callers can decorate the copy (e.g. attach insights) without touching
// the stored entry.
func (r HealthRecord) Clone() HealthRecord {
	clone := r
	clone.Content = maps.Clone(r.Content)
	clone.Insights = nil
	return clone
}

// ResolveDate returns the record's effective date: Content["date"] when it
// is a non-empty string, otherwise now formatted as RFC 3339.
func ResolveDate(content map[string]any, now time.Time) string {
	if date, ok := content["date"].(string); ok && date != "" {
		return date
	}
	return now.UTC().Format(time.RFC3339)
}
