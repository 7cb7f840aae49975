// Package icon maps payment names to display glyphs by keyword.
package icon

import "strings"

// DefaultGlyph is used when no keyword matches and on expenses generated from
// payments that carry no icon of their own.
const DefaultGlyph = "🔁"

type Mapping struct {
	Keyword string
	Glyph   string
}

// DefaultMappings is the stock keyword table. Order matters: the first
// matching keyword wins.
var DefaultMappings = []Mapping{
	{Keyword: "apple", Glyph: ""},
	{Keyword: "zoom", Glyph: "🔍"},
	{Keyword: "youtube", Glyph: "▶️"},
	{Keyword: "google", Glyph: "🔎"},
	{Keyword: "netflix", Glyph: "🎬"},
	{Keyword: "spotify", Glyph: "🎧"},
	{Keyword: "amazon", Glyph: "🛒"},
}

type Classifier struct {
	mappings []Mapping
}

// NewClassifier copies the table so later mutation of the caller's slice
// cannot change classification results.
func NewClassifier(mappings []Mapping) *Classifier {
	owned := make([]Mapping, len(mappings))
	copy(owned, mappings)
	return &Classifier{mappings: owned}
}

// Classify matches name against the keyword table, case-insensitively, first
// match wins.
func (c *Classifier) Classify(name string) string {
	name = strings.ToLower(name)
	for _, m := range c.mappings {
		if strings.Contains(name, m.Keyword) {
			return m.Glyph
		}
	}
	return DefaultGlyph
}
