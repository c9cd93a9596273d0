package venues

// Contact holds the typed contact fields. Phone is stored in E.164-like
// format ("+65 XXXX XXXX"); Website keeps its source form and is only
// normalized for comparison.
type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// IsZero reports whether no contact information is present.
func (c Contact) IsZero() bool {
	return c.Phone == "" && c.Email == "" && c.Website == ""
}
