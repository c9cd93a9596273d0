package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venuehq/venuemap/pkg/venues"
)

func TestComparisonName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"suffix words stripped", "Fairmont Hotel Singapore", "fairmont"},
		{"bare name unchanged", "Fairmont", "fairmont"},
		{"punctuation removed", "Shangri-La's Rasa Sentosa", "shangrilas rasa sentosa"},
		{"whitespace collapsed", "The   Grand  Pavilion", "grand pavilion"},
		{"everything generic", "The Hotel Singapore", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComparisonName(tt.input))
		})
	}
}

func TestPhoneticKey(t *testing.T) {
	// Spelling variants of the same name collide into one key.
	assert.Equal(t, PhoneticKey("Shangri-La"), PhoneticKey("Shangrila"))

	// Distinct names produce distinct keys.
	assert.NotEqual(t, PhoneticKey("Fairmont"), PhoneticKey("Capella"))

	// Names that normalize to nothing produce no key.
	assert.Equal(t, "", PhoneticKey("Hotel Singapore"))
	assert.Equal(t, "", PhoneticKey(""))
}

func TestBlocks(t *testing.T) {
	records := []venues.Venue{
		{Name: "Fairmont Singapore", Location: venues.Location{PostalCode: "189560"}},
		{Name: "The Fairmont Hotel", Location: venues.Location{PostalCode: "189560"}},
		{Name: "Capella Singapore", Location: venues.Location{PostalCode: "098297"}},
		{Name: "", Location: venues.Location{}},
	}

	blocks := Blocks(records)

	assert.ElementsMatch(t, []int{0, 1}, blocks["postal:189560"])
	assert.ElementsMatch(t, []int{2}, blocks["postal:098297"])
	assert.ElementsMatch(t, []int{3}, blocks["unblocked"])

	// Both Fairmont variants share a phonetic block.
	key := phoneticKeyPrefix + PhoneticKey("Fairmont")
	assert.ElementsMatch(t, []int{0, 1}, blocks[key])
}

func TestCandidatePairs(t *testing.T) {
	t.Run("within-block pairs only", func(t *testing.T) {
		blocks := map[string][]int{
			"postal:189560": {0, 1, 2},
			"postal:098297": {3},
		}

		pairs := CandidatePairs(blocks)
		assert.ElementsMatch(t, [][2]int{{0, 1}, {0, 2}, {1, 2}}, pairs)
	})

	t.Run("pair in multiple blocks emitted once", func(t *testing.T) {
		blocks := map[string][]int{
			"postal:189560": {0, 1},
			"phonetic:F655": {1, 0},
		}

		pairs := CandidatePairs(blocks)
		assert.Equal(t, [][2]int{{0, 1}}, pairs)
	})

	t.Run("deterministic order", func(t *testing.T) {
		blocks := map[string][]int{
			"b": {2, 3},
			"a": {0, 1},
		}

		for i := 0; i < 5; i++ {
			assert.Equal(t, [][2]int{{0, 1}, {2, 3}}, CandidatePairs(blocks))
		}
	})
}
