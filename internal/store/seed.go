package store

import (
	"context"

	"github.com/somahealth/vault-companion/internal/insight"
	"github.com/somahealth/vault-companion/internal/logger"
	"github.com/somahealth/vault-companion/models"
)

// DemoUserID is the owner of the seeded sample records. It matches the id
// of the hard-coded demo login user.
const DemoUserID = "1742961914546"

// DemoRecipientID receives the seeded demo share.
const DemoRecipientID = "demo-recipient"

// SeedDemoData loads the sample vault used by demo deployments: three
// health records spanning three specialties, the demo user's knowledge
// source preferences, and one active share. Records are created through
// the upsert path so their ids stay stable across restarts.
func SeedDemoData(ctx context.Context, storages *Storages, log *logger.Logger) {
	storages.Records.Update(ctx, "hr1234567890", models.RecordRequest{
		UserID:     DemoUserID,
		RecordType: "imaging",
		Title:      "MRI Scan Results",
		Content: map[string]any{
			"details":   "MRI of the lumbar spine shows L5-S1 disc protrusion with slight nerve impingement.",
			"date":      "2024-03-28",
			"location":  "Central Radiology",
			"doctor":    "Dr. Rodriguez",
			"reason":    "Lower back pain with radiating symptoms",
			"diagnosis": "L5-S1 disc herniation with mild nerve compression",
		},
		Specialty: insight.SpecialtyMedical,
	})

	storages.Records.Update(ctx, "hr0987654321", models.RecordRequest{
		UserID:     DemoUserID,
		RecordType: "annual_physical",
		Title:      "Annual Check-up",
		Content: map[string]any{
			"details":  "Regular annual checkup with primary care physician.",
			"date":     "2025-11-01",
			"location": "Community Health Center",
			"doctor":   "Dr. Smith",
			"duration": "45 minutes",
			"reason":   "Annual wellness examination",
			"followUp": map[string]any{
				"required": true,
				"date":     "2026-11-01",
				"notes":    "Schedule next annual checkup",
			},
		},
		Specialty: insight.SpecialtyMedical,
	})

	storages.Records.Update(ctx, "hr2468013579", models.RecordRequest{
		UserID:     DemoUserID,
		RecordType: "trigger_point",
		Title:      "Trigger Point Therapy – Kasa Chakra",
		Content: map[string]any{
			"details":   "Client presented with 6 weeks of back, leg, and sciatic pain. Practitioner assessed for and identified trigger points, especially below the pelvis (psoas region) and behind the right shoulder blade. Diagnosis was Psoas Syndrome and upper back myofascial tension. Manual therapy was performed to release the trigger points.",
			"date":      "2025-03-01",
			"location":  "Kasa Chakra, Lagos, Portugal",
			"doctor":    "Unknown (Bodywork Specialist)",
			"duration":  "60 minutes",
			"reason":    "Back, leg, and sciatic pain with increasing mental stress from fear of disc injury",
			"diagnosis": "Psoas Syndrome and myofascial trigger points",
			"followUp": map[string]any{
				"required": false,
				"notes":    "Rest and rehabilitation for 2–3 weeks post-treatment",
			},
			"payment": map[string]any{
				"amount":   "80",
				"currency": "EUR",
				"paid":     true,
			},
		},
		Specialty: insight.SpecialtyMassage,
	})

	storages.Preferences.Set(ctx, DemoUserID, []string{
		insight.SourceMedical,
		insight.SourceNutritional,
		insight.SourceHolistic,
	})

	storages.Shares.Create(ctx, "hr1234567890", DemoUserID, DemoRecipientID, models.PermissionReadOnly, nil)

	log.Info().Str("user_id", DemoUserID).Msg("demo data seeded")
}
