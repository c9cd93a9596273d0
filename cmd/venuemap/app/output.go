package app

import (
	"encoding/json"
	"os"

	"github.com/venuehq/venuemap/pkg/errors"
)

// writeJSON marshals v as indented JSON to the given path, or to stdout
// when path is empty or "-".
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WrapIO("write", path, err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		if err != nil {
			return errors.WrapIO("write", "stdout", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
