package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venuehq/venuemap/pkg/venues"
)

func TestNameSimilarity(t *testing.T) {
	t.Run("identical after normalization", func(t *testing.T) {
		assert.Equal(t, 1.0, NameSimilarity("Fairmont Singapore", "The Fairmont Hotel"))
	})

	t.Run("unrelated names score low", func(t *testing.T) {
		assert.Less(t, NameSimilarity("Capella", "Fullerton Bay"), 0.6)
	})

	t.Run("misspelling scores high", func(t *testing.T) {
		assert.Greater(t, NameSimilarity("Shangri-La", "Shangrila"), 0.8)
	})

	t.Run("empty names score zero", func(t *testing.T) {
		assert.Equal(t, 0.0, NameSimilarity("", "Fairmont"))
		assert.Equal(t, 0.0, NameSimilarity("The Hotel", "Fairmont"))
	})
}

func TestSimilarity(t *testing.T) {
	t.Run("same venue different sources", func(t *testing.T) {
		a := venues.Venue{
			Name: "Fairmont Singapore",
			Location: venues.Location{
				Address:    "80 Bras Basah Road",
				PostalCode: "189560",
			},
			Contact: venues.Contact{
				Phone:   "+65 6339 7777",
				Website: "https://www.fairmont.com/singapore",
			},
		}
		b := venues.Venue{
			Name: "The Fairmont Hotel",
			Location: venues.Location{
				Address:    "80 Bras Basah Rd",
				PostalCode: "189560",
			},
			Contact: venues.Contact{
				Phone:   "6339 7777",
				Website: "fairmont.com/singapore",
			},
		}

		score, reasons := Similarity(&a, &b)
		assert.GreaterOrEqual(t, score, 0.75)
		assert.Contains(t, reasons, "phone_match")
		assert.Contains(t, reasons, "postal_match")
	})

	t.Run("different venues same street", func(t *testing.T) {
		a := venues.Venue{
			Name:     "Capella Singapore",
			Location: venues.Location{Address: "1 The Knolls", PostalCode: "098297"},
		}
		b := venues.Venue{
			Name:     "Amara Sanctuary",
			Location: venues.Location{Address: "1 Larkhill Road", PostalCode: "099394"},
		}

		score, _ := Similarity(&a, &b)
		assert.Less(t, score, 0.75)
	})

	t.Run("missing signals renormalize", func(t *testing.T) {
		// Name is the only shared signal; identical names must still reach
		// the threshold instead of being diluted by absent fields.
		a := venues.Venue{Name: "Fairmont Singapore"}
		b := venues.Venue{Name: "Fairmont"}

		score, _ := Similarity(&a, &b)
		assert.Equal(t, 1.0, score)
	})

	t.Run("no shared signals scores zero", func(t *testing.T) {
		a := venues.Venue{Name: "Fairmont"}
		b := venues.Venue{Contact: venues.Contact{Phone: "+65 6339 7777"}}

		score, reasons := Similarity(&a, &b)
		assert.Equal(t, 0.0, score)
		assert.Empty(t, reasons)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := venues.Venue{Name: "Fairmont", Location: venues.Location{PostalCode: "189560"}}
		b := venues.Venue{Name: "Fairmount", Location: venues.Location{PostalCode: "189560"}}

		ab, _ := Similarity(&a, &b)
		ba, _ := Similarity(&b, &a)
		assert.Equal(t, ab, ba)
	})
}

func TestPhoneMatch(t *testing.T) {
	assert.True(t, phoneMatch("+65 6339 7777", "63397777"))
	assert.True(t, phoneMatch("6563397777", "+65 6339 7777"))
	assert.False(t, phoneMatch("+65 6339 7777", "+65 6339 7778"))
	assert.False(t, phoneMatch("777", "777"))
}

func TestWebsiteDomain(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.fairmont.com/singapore", "fairmont.com"},
		{"http://fairmont.com", "fairmont.com"},
		{"WWW.Fairmont.COM/sg/weddings", "fairmont.com"},
		{"fairmont.com", "fairmont.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, websiteDomain(tt.url))
	}
}
