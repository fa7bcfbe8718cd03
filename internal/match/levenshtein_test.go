package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"presenter", "presnter", 1},
		{"presenter", "presentor", 1},
		{"driver", "drvier", 2},
		{"ABC", "abc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"clear-on-blur"}, Suggest("clear-on-blr", "clear-on-blur"))
	assert.Equal(t, []string{"clear-on-blur"}, Suggest("clearOnBlur", "clear-on-blur"))
	assert.Equal(t, []string{"driver"}, Suggest("drvier", "driver"))
	assert.Equal(t, []string{"presenter"}, Suggest("Presenter", "presenter"))
	assert.Empty(t, Suggest("presenter", "presenter"))
	assert.Empty(t, Suggest("json", "presenter"))
}
