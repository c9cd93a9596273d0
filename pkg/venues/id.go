package venues

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	idInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)
	idDashRuns     = regexp.MustCompile(`-+`)
)

// MakeID derives a stable slug identifier from a venue name. Records without
// a usable name get a synthetic UUID-based identifier so they still carry a
// unique, immutable id through the pipeline.
func MakeID(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = idInvalidChars.ReplaceAllString(slug, "")
	slug = idDashRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "venue-" + uuid.NewString()
	}
	return "venue-" + slug
}
