// Package classify assigns a venue type using ordered keyword rules.
// Rules are checked in declaration order and the first match wins; names
// matching no rule fall back to unknown rather than guessing.
package classify

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/venuehq/venuemap/pkg/errors"
	"github.com/venuehq/venuemap/pkg/venues"
)

// Rule maps a keyword list to a venue type. Keyword lists are mutually
// exclusive by construction; ordering handles names that would otherwise
// match more than one category (a "hotel ballroom" is a hotel).
type Rule struct {
	Type     venues.VenueType `yaml:"type"`
	Keywords []string         `yaml:"keywords"`
}

// defaultRules is the embedded rule set, checked in order.
var defaultRules = []Rule{
	{
		Type: venues.VenueTypeHotel,
		Keywords: []string{
			"hotel", "resort", "inn", "suite",
			"grand hyatt", "marriott", "shangri-la", "fairmont",
			"mandarin", "ritz", "conrad", "peninsula",
		},
	},
	{
		Type: venues.VenueTypeClub,
		Keywords: []string{
			"club", "country club", "yacht club", "golf club", "recreation",
		},
	},
	{
		Type: venues.VenueTypeBanquetHall,
		Keywords: []string{
			"hall", "ballroom", "function room", "event space", "banquet",
		},
	},
	{
		Type: venues.VenueTypeRestaurant,
		Keywords: []string{
			"restaurant", "dining", "bistro", "café", "cafe",
			"kitchen", "grill", "steakhouse",
		},
	},
	{
		Type: venues.VenueTypeUnique,
		Keywords: []string{
			"garden", "rooftop", "terrace", "museum", "gallery",
			"barn", "warehouse", "loft", "conservatory",
		},
	},
}

// Classifier tags venues with a type from keyword heuristics.
type Classifier struct {
	rules []Rule
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithRules replaces the embedded rule set.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) {
		if len(rules) > 0 {
			c.rules = rules
		}
	}
}

// New creates a Classifier with the embedded default rules.
func New(opts ...Option) *Classifier {
	c := &Classifier{rules: defaultRules}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadRules reads a rule set override from a YAML file.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.NewConfigError("classifier", "invalid rules file "+path, err)
	}

	for _, rule := range rules {
		if !rule.Type.IsValid() {
			return nil, errors.NewConfigError("classifier",
				"rules file "+path+" references unknown venue type "+rule.Type.String(), nil)
		}
	}
	return rules, nil
}

// Classify assigns a venue type from the venue's name text. The first
// matching rule wins; no match means unknown.
func (c *Classifier) Classify(v *venues.Venue) venues.VenueType {
	text := strings.ToLower(v.Name)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Type
			}
		}
	}
	return venues.VenueTypeUnknown
}

// Apply classifies the venue and sets its type in place.
func (c *Classifier) Apply(v *venues.Venue) {
	v.VenueType = c.Classify(v)
}
