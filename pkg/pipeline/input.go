package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/venuehq/venuemap/pkg/errors"
	"github.com/venuehq/venuemap/pkg/normalize"
)

// ReadRawRecords loads raw source records from a JSON or CSV file, chosen by
// extension. JSON input is an array of flat objects; non-string values are
// stringified so source adapters can be sloppy about types.
func ReadRawRecords(path string) ([]normalize.RawRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	default:
		return readJSON(path)
	}
}

func readJSON(path string) ([]normalize.RawRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	records := make([]normalize.RawRecord, 0, len(rows))
	for _, row := range rows {
		record := make(normalize.RawRecord, len(row))
		for key, value := range row {
			record[key] = stringify(value)
		}
		records = append(records, record)
	}
	return records, nil
}

func readCSV(path string) ([]normalize.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	records := make([]normalize.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(normalize.RawRecord, len(header))
		for i, key := range header {
			if i < len(row) {
				record[strings.TrimSpace(key)] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// stringify renders a JSON value the way a raw text field would carry it.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		return fmt.Sprintf("%t", v)
	default:
		return fmt.Sprint(v)
	}
}
