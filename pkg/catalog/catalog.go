// Package catalog reads citation catalog files maintained outside the
// service binary.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if f.Version == "" {
		return nil, fmt.Errorf("catalog file %s has no version", path)
	}
	if len(f.Citations) == 0 {
		return nil, fmt.Errorf("catalog file %s has no citations", path)
	}
	return &f, nil
}
