package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// InsightBlock is a single perspective's opinion on a health record:
// a short summary, a list of recommendations, and the citations they
// are drawn from. Blocks are produced by the insight engine on every
// opinion-mode read and are never persisted.
type InsightBlock struct {
	// Summary is a short free-text assessment of the record from this
	// perspective.
	Summary string `json:"summary"`

	// Recommendations lists suggested actions, in authoring order.
	Recommendations []string `json:"recommendations"`

	// Sources lists the citations backing the summary and
	// recommendations, in authoring order.
	Sources []string `json:"sources"`
}

// InsightMap maps perspective names (e.g. "medical", "nutritional") to
// their insight blocks while preserving insertion order. Plain Go maps
// marshal keys alphabetically; the presentation layer renders perspectives
// in the order the rule set authored them, so ordering is part of the
// contract.
type InsightMap struct {
	keys   []string
	blocks map[string]InsightBlock
}

// NewInsightMap returns an empty, ready-to-use InsightMap.
func NewInsightMap() *InsightMap {
	return &InsightMap{blocks: make(map[string]InsightBlock)}
}

// Set stores the block under the given perspective. A perspective set
// twice keeps its original position.
func (m *InsightMap) Set(perspective string, block InsightBlock) {
	if m.blocks == nil {
		m.blocks = make(map[string]InsightBlock)
	}
	if _, exists := m.blocks[perspective]; !exists {
		m.keys = append(m.keys, perspective)
	}
	m.blocks[perspective] = block
}

// Get returns the block stored under the given perspective.
func (m *InsightMap) Get(perspective string) (InsightBlock, bool) {
	block, ok := m.blocks[perspective]
	return block, ok
}

// Len returns the number of perspectives in the map.
func (m *InsightMap) Len() int {
	return len(m.keys)
}

// Perspectives returns the perspective names in insertion order.
// The returned slice must not be modified.
func (m *InsightMap) Perspectives() []string {
	return m.keys
}

// MarshalJSON serializes the map as a JSON object whose keys appear in
// insertion order.
func (m *InsightMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("error marshaling insight key: %w", err)
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		blockJSON, err := json.Marshal(m.blocks[key])
		if err != nil {
			return nil, fmt.Errorf("error marshaling insight block %q: %w", key, err)
		}
		buf.Write(blockJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores the map from a JSON object, preserving the
// document order of its keys.
func (m *InsightMap) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.blocks = make(map[string]InsightBlock)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("error reading insight map: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("insight map must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("error reading insight map key: %w", err)
		}
		key := keyTok.(string)

		var block InsightBlock
		if err := dec.Decode(&block); err != nil {
			return fmt.Errorf("error decoding insight block %q: %w", key, err)
		}
		m.Set(key, block)
	}

	return nil
}
