package models

// Mode controls whether a read returns raw record data or record data
// decorated with multi-perspective insights.
type Mode string

const (
	// ModeData returns stored records unmodified. The insight engine is
	// never invoked for data-mode reads.
	ModeData Mode = "data"

	// ModeOpinion attaches per-perspective insights to every returned
	// record, computed from the record owner's enabled knowledge sources.
	ModeOpinion Mode = "opinion"
)

// ParseMode maps a raw query-parameter value to a Mode. Any value other
// than "opinion" — including the empty string — falls back to ModeData.
func ParseMode(raw string) Mode {
	if raw == string(ModeOpinion) {
		return ModeOpinion
	}
	return ModeData
}
