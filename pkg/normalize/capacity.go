package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/venuehq/venuemap/pkg/venues"
)

var bareNumbers = regexp.MustCompile(`(\d+(?:,\d{3})*)`)

// Capacity decomposes a free-text capacity quote into typed capacity
// fields. Guest counts and table counts are both retained so the
// source unit is never dropped; conversion between them uses the single
// guestsPerTable parameter.
//
//	"100-350 pax"   -> max_capacity 350, min_tables 10, max_tables 35
//	"10-40 tables"  -> max_capacity 400, min_tables 10, max_tables 40
//
// The second return value lists fields that could not be derived.
func Capacity(raw string, guestsPerTable int) (venues.Capacity, []string) {
	var capacity venues.Capacity
	if strings.TrimSpace(raw) == "" {
		return capacity, nil
	}
	if guestsPerTable <= 0 {
		guestsPerTable = venues.DefaultGuestsPerTable
	}

	numbers := parseNumbers(raw)
	if len(numbers) == 0 {
		return capacity, []string{venues.FieldMaxCapacity}
	}

	low := numbers[0]
	high := numbers[len(numbers)-1]
	if high < low {
		low, high = high, low
	}

	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "pax") || strings.Contains(lower, "guest"):
		// Source unit is guests.
		maxCap := high
		minTables := low / guestsPerTable
		maxTables := high / guestsPerTable
		capacity.MaxCapacity = &maxCap
		capacity.MinTables = &minTables
		capacity.MaxTables = &maxTables
	case strings.Contains(lower, "table") || strings.Contains(lower, "round"):
		// Source unit is tables.
		maxCap := high * guestsPerTable
		minTables := low
		maxTables := high
		capacity.MaxCapacity = &maxCap
		capacity.MinTables = &minTables
		capacity.MaxTables = &maxTables
	default:
		// Numbers without a recognizable unit are not guessed at.
		return capacity, []string{venues.FieldMaxCapacity}
	}

	return capacity, nil
}

// parseNumbers extracts all integers from raw text.
func parseNumbers(raw string) []int {
	matches := bareNumbers.FindAllStringSubmatch(raw, -1)
	numbers := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}
