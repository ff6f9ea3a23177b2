package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Simple name", "Desk Lamp", "desk-lamp"},
		{"Mixed case", "Ceramic Coffee Mug", "ceramic-coffee-mug"},
		{"Punctuation collapses", "Wool & Linen Throw!", "wool-linen-throw"},
		{"Multiple spaces", "Oak   Side   Table", "oak-side-table"},
		{"Leading and trailing junk", "  --Minimalist Clock--  ", "minimalist-clock"},
		{"Numbers survive", "Model 3000 Blender", "model-3000-blender"},
		{"Already a slug", "desk-lamp", "desk-lamp"},
		{"Empty string", "", ""},
		{"Only punctuation", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
