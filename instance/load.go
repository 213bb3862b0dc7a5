// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads the file at path. ".yaml", ".yml" and ".json" files go through
// ParseYAML; anything else is parsed as text.
func Load(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open: %w", err)
	}
	defer f.Close()

	var in *Instance
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		in, err = ParseYAML(f)
	default:
		in, err = ParseText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}
