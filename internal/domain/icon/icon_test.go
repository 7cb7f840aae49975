package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	c := NewClassifier(DefaultMappings)

	tests := []struct {
		name string
		want string
	}{
		{"Netflix Premium", "🎬"},
		{"SPOTIFY family", "🎧"},
		{"amazon prime", "🛒"},
		{"Gym membership", DefaultGlyph},
		{"", DefaultGlyph},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Classify(tt.name), tt.name)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	c := NewClassifier([]Mapping{
		{Keyword: "music", Glyph: "🎵"},
		{Keyword: "apple music", Glyph: ""},
	})

	assert.Equal(t, "🎵", c.Classify("Apple Music"))
}

func TestClassifierOwnsItsTable(t *testing.T) {
	table := []Mapping{{Keyword: "netflix", Glyph: "🎬"}}
	c := NewClassifier(table)

	table[0].Glyph = "💥"

	assert.Equal(t, "🎬", c.Classify("netflix"))
}
