// Package insight implements the multi-perspective insight selection
// engine for health records. Given a record and the set of knowledge
// sources its owner has enabled, the engine selects canned opinion blocks
// from a rule table keyed by record type and perspective. Selection is
// deterministic: no randomness, no external calls, and no failure modes —
// unknown record types and unknown source tags simply select nothing.
package insight

// Knowledge sources a user can enable. This is the closed set of
// perspectives the insight engine may draw on.
const (
	SourceMedical       = "medical"       // traditional medical/GP-led perspectives
	SourcePhysiotherapy = "physiotherapy" // physiotherapy approaches
	SourceHolistic      = "holistic"      // holistic/complementary approaches
	SourceNutritional   = "nutritional"   // diet and nutrition-focused
	SourceAyurvedic     = "ayurvedic"     // Ayurvedic medicine
	SourceEastern       = "eastern"       // traditional Eastern medicine (including TCM)
	SourceHerbal        = "herbal"        // herbal remedies
)

// PerspectiveMentalHealth is an output perspective without a knowledge
// source of its own: the rule table gates it on the holistic source.
const PerspectiveMentalHealth = "mental_health"

// First-tier record specialties.
const (
	SpecialtyMedical       = "medical"
	SpecialtyPhysiotherapy = "physiotherapy"
	SpecialtyChiropractic  = "chiropractic"
	SpecialtyMassage       = "massage"
	SpecialtyMentalHealth  = "mental_health"
	SpecialtyNutrition     = "nutrition"
	SpecialtyAlternative   = "alternative"
	SpecialtyDentistry     = "dentistry"
	SpecialtyOptometry     = "optometry"
	SpecialtyOther         = "other"
)

// knowledgeSources is the registry of valid source tags, in display order.
var knowledgeSources = []string{
	SourceMedical,
	SourcePhysiotherapy,
	SourceHolistic,
	SourceNutritional,
	SourceAyurvedic,
	SourceEastern,
	SourceHerbal,
}

// recordSpecialties lists the first-tier classifications, in display order.
var recordSpecialties = []string{
	SpecialtyMedical,
	SpecialtyPhysiotherapy,
	SpecialtyChiropractic,
	SpecialtyMassage,
	SpecialtyMentalHealth,
	SpecialtyNutrition,
	SpecialtyAlternative,
	SpecialtyDentistry,
	SpecialtyOptometry,
	SpecialtyOther,
}

// recordTypes lists the second-tier classifications, grouped by specialty,
// in display order.
var recordTypes = []string{
	// medical
	"consultation",
	"laboratory",
	"imaging",
	"prescription",
	"vaccination",
	"surgery",
	"emergency",
	"annual_physical",
	// physiotherapy
	"physio_assessment",
	"physio_treatment",
	"exercise_program",
	"progress_review",
	// chiropractic
	"adjustment",
	"xray_assessment",
	"maintenance_visit",
	// massage/bodywork
	"deep_tissue",
	"trigger_point",
	"sports_massage",
	"thai_massage",
	"reflexology",
	"craniosacral",
	"myofascial",
	// mental health
	"therapy_session",
	"mental_assessment",
	"medication_review",
	// nutrition
	"nutrition_assessment",
	"nutrition_followup",
	"diet_plan",
	// alternative/complementary
	"acupuncture",
	"naturopathy",
	"homeopathy",
	"ayurveda",
	"tcm",
	"energy_healing",
	// dentistry
	"dental_checkup",
	"dental_cleaning",
	"dental_procedure",
	"dental_surgery",
	// optometry
	"eye_exam",
	"eye_prescription",
	"eye_treatment",
}

// legacyRecordTypes maps retired type names to their canonical equivalents.
// Stored records keep the raw legacy name; the alias only matters when a
// caller needs the canonical classification.
var legacyRecordTypes = map[string]string{
	"bloodwork":   "laboratory",
	"appointment": "consultation",
	"medication":  "prescription",
	"allergy":     "consultation",
	"vitals":      "consultation",
	"sleep":       "consultation",
	"exercise":    "exercise_program",
}

// KnowledgeSources returns the registry of valid knowledge-source tags.
// The returned slice must not be modified.
func KnowledgeSources() []string {
	return knowledgeSources
}

// RecordTypes returns all supported second-tier record types.
// The returned slice must not be modified.
func RecordTypes() []string {
	return recordTypes
}

// RecordSpecialties returns all supported first-tier specialties.
// The returned slice must not be modified.
func RecordSpecialties() []string {
	return recordSpecialties
}

// IsKnownSource reports whether the tag is a member of the
// knowledge-source registry.
func IsKnownSource(tag string) bool {
	for _, source := range knowledgeSources {
		if source == tag {
			return true
		}
	}
	return false
}

// CanonicalRecordType resolves legacy record-type aliases
// (e.g. "bloodwork" → "laboratory"). Unknown and canonical names are
// returned unchanged.
func CanonicalRecordType(recordType string) string {
	if canonical, ok := legacyRecordTypes[recordType]; ok {
		return canonical
	}
	return recordType
}
