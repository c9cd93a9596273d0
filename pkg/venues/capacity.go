package venues

// DefaultGuestsPerTable is the banquet seating assumption used to convert
// between guest counts and table counts. Sources quoting "pax" and sources
// quoting "tables" both land in the same canonical fields through this one
// constant, so the conversion stays explicit and reversible.
//
// TODO: make this configurable per region once a second market with a
// different seating convention is onboarded.
const DefaultGuestsPerTable = 10

// Capacity holds the typed capacity fields. MaxCapacity is always expressed
// in guests; MinTables and MaxTables in tables. Both units are retained so
// the original source unit is never dropped.
type Capacity struct {
	MaxCapacity *int `json:"max_capacity,omitempty"` // Upper bound, in guests
	MinTables   *int `json:"min_tables,omitempty"`
	MaxTables   *int `json:"max_tables,omitempty"`
}

// IsZero reports whether no capacity information is present.
func (c Capacity) IsZero() bool {
	return c.MaxCapacity == nil && c.MinTables == nil && c.MaxTables == nil
}
