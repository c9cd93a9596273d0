package dedupe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/venuehq/venuemap/pkg/venues"
)

// Sub-score weights. When a signal is missing on either side it is excluded
// and the remaining weights are renormalized to sum to 1.
const (
	WeightName    = 0.40
	WeightAddress = 0.20
	WeightPhone   = 0.15
	WeightWebsite = 0.15
	WeightPostal  = 0.10
)

// Last significant digits compared for a phone match.
const phoneMatchDigits = 8

var nonDigits = regexp.MustCompile(`\D`)

// Similarity computes the weighted multi-metric similarity between two
// venue records, in [0, 1], along with the reasons behind strong
// sub-signals. Signals missing on either side are excluded from the sum and
// the remaining weights renormalized, so sparse records are judged on the
// evidence both sides actually carry.
func Similarity(a, b *venues.Venue) (float64, []string) {
	var weighted, totalWeight float64
	var reasons []string

	if a.Name != "" && b.Name != "" {
		nameSim := NameSimilarity(a.Name, b.Name)
		weighted += nameSim * WeightName
		totalWeight += WeightName
		if nameSim > 0.8 {
			reasons = append(reasons, fmt.Sprintf("name_sim=%.2f", nameSim))
		}
	}

	if a.Location.Address != "" && b.Location.Address != "" {
		addrSim := tokenJaccard(addressTokens(a.Location.Address), addressTokens(b.Location.Address))
		weighted += addrSim * WeightAddress
		totalWeight += WeightAddress
		if addrSim > 0.8 {
			reasons = append(reasons, fmt.Sprintf("addr_sim=%.2f", addrSim))
		}
	}

	if a.Contact.Phone != "" && b.Contact.Phone != "" {
		totalWeight += WeightPhone
		if phoneMatch(a.Contact.Phone, b.Contact.Phone) {
			weighted += WeightPhone
			reasons = append(reasons, "phone_match")
		}
	}

	if a.Contact.Website != "" && b.Contact.Website != "" {
		totalWeight += WeightWebsite
		if websiteDomain(a.Contact.Website) == websiteDomain(b.Contact.Website) {
			weighted += WeightWebsite
			reasons = append(reasons, "website_match")
		}
	}

	if len(a.Location.PostalCode) == 6 && len(b.Location.PostalCode) == 6 {
		totalWeight += WeightPostal
		if a.Location.PostalCode == b.Location.PostalCode {
			weighted += WeightPostal
			reasons = append(reasons, "postal_match")
		}
	}

	if totalWeight == 0 {
		return 0, nil
	}
	return weighted / totalWeight, reasons
}

// NameSimilarity combines token-set Jaccard overlap with Jaro-Winkler
// string similarity, averaged. Token overlap ignores word order; the edit
// distance half catches misspellings.
func NameSimilarity(name1, name2 string) float64 {
	n1 := ComparisonName(name1)
	n2 := ComparisonName(name2)
	if n1 == "" || n2 == "" {
		return 0
	}

	tokenSim := tokenJaccard(strings.Fields(n1), strings.Fields(n2))
	editSim := smetrics.JaroWinkler(n1, n2, 0.7, 4)
	return (tokenSim + editSim) / 2
}

// tokenJaccard computes the Jaccard coefficient over two token lists.
func tokenJaccard(tokens1, tokens2 []string) float64 {
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0
	}

	set1 := make(map[string]bool, len(tokens1))
	for _, t := range tokens1 {
		set1[t] = true
	}
	set2 := make(map[string]bool, len(tokens2))
	for _, t := range tokens2 {
		set2[t] = true
	}

	intersection := 0
	for t := range set1 {
		if set2[t] {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	return float64(intersection) / float64(union)
}

// addressTokens normalizes an address into comparison tokens.
func addressTokens(address string) []string {
	address = strings.ToLower(address)
	address = nonAlnumSpace.ReplaceAllString(address, "")
	return strings.Fields(address)
}

// phoneMatch compares the last significant digits of two phone numbers.
func phoneMatch(phone1, phone2 string) bool {
	d1 := nonDigits.ReplaceAllString(phone1, "")
	d2 := nonDigits.ReplaceAllString(phone2, "")
	if len(d1) < phoneMatchDigits || len(d2) < phoneMatchDigits {
		return false
	}
	return d1[len(d1)-phoneMatchDigits:] == d2[len(d2)-phoneMatchDigits:]
}

// websiteDomain strips scheme, www prefix, and path from a URL, leaving the
// bare domain for exact comparison.
func websiteDomain(url string) string {
	url = strings.ToLower(strings.TrimSpace(url))
	url = strings.TrimPrefix(url, "https://")
	url = strings.TrimPrefix(url, "http://")
	url = strings.TrimPrefix(url, "www.")
	if i := strings.IndexByte(url, '/'); i >= 0 {
		url = url[:i]
	}
	return url
}
