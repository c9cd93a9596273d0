// Package dedupe resolves duplicate venue records: blocking to bound
// pairwise comparison, multi-metric similarity scoring, transitive
// clustering via union-find, and canonicalization of each cluster into one
// survivor record.
package dedupe

import (
	"regexp"
	"sort"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/venuehq/venuemap/pkg/venues"
)

// Block key prefixes.
const (
	postalKeyPrefix   = "postal:"
	phoneticKeyPrefix = "phonetic:"

	// unblockedKey collects records carrying neither a postal code nor a
	// usable name. They are compared only against each other, which bounds
	// the worst case. True near-duplicates lacking both signals are not
	// found; that is an accepted precision/recall trade-off.
	unblockedKey = "unblocked"
)

// nameSuffixWords are generic name parts stripped before comparison, so
// "Fairmont Hotel Singapore" and "Fairmont" compare on their distinctive
// tokens.
var nameSuffixWords = regexp.MustCompile(`\b(the|hotel|singapore|pte ltd|ltd|restaurant|club|ballroom)\b`)

var (
	nonAlnumSpace = regexp.MustCompile(`[^a-z0-9\s]`)
	nonLetters    = regexp.MustCompile(`[^a-z]`)
)

// ComparisonName normalizes a venue name for matching: lowercased, generic
// suffix words removed, punctuation stripped, whitespace collapsed.
func ComparisonName(name string) string {
	name = strings.ToLower(name)
	name = nameSuffixWords.ReplaceAllString(name, "")
	name = nonAlnumSpace.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}

// PhoneticKey encodes a comparison-normalized name phonetically so spelling
// variants collide into the same block.
func PhoneticKey(name string) string {
	letters := nonLetters.ReplaceAllString(ComparisonName(name), "")
	if letters == "" {
		return ""
	}
	return smetrics.Soundex(letters)
}

// Blocks partitions records into comparison buckets keyed by exact postal
// code and by phonetic name encoding. A record joins every block it
// qualifies for; records with neither signal share the single unblocked
// bucket. Only records sharing a block are ever compared.
func Blocks(records []venues.Venue) map[string][]int {
	blocks := make(map[string][]int)

	for i := range records {
		blocked := false

		if postal := records[i].Location.PostalCode; len(postal) == 6 {
			key := postalKeyPrefix + postal
			blocks[key] = append(blocks[key], i)
			blocked = true
		}

		if phonetic := PhoneticKey(records[i].Name); phonetic != "" {
			key := phoneticKeyPrefix + phonetic
			blocks[key] = append(blocks[key], i)
			blocked = true
		}

		if !blocked {
			blocks[unblockedKey] = append(blocks[unblockedKey], i)
		}
	}

	return blocks
}

// CandidatePairs lists every unique within-block index pair, in
// deterministic order. Pairs appearing in several blocks are emitted once.
func CandidatePairs(blocks map[string][]int) [][2]int {
	seen := make(map[[2]int]bool)
	var pairs [][2]int

	keys := make([]string, 0, len(blocks))
	for key := range blocks {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		indices := blocks[key]
		for i := 0; i < len(indices); i++ {
			for j := i + 1; j < len(indices); j++ {
				a, b := indices[i], indices[j]
				if a > b {
					a, b = b, a
				}
				pair := [2]int{a, b}
				if !seen[pair] {
					seen[pair] = true
					pairs = append(pairs, pair)
				}
			}
		}
	}

	return pairs
}
