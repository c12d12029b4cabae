package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// loadManifest reads and validates the YAML manifest. Duplicate command
// names are rejected because sheet names in the report must be unique.
func loadManifest(path string) (*manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mf := &manifest{}
	if err := yamlUnmarshal(b, mf); err != nil {
		return nil, err
	}
	if mf.Name == "" {
		return nil, errors.New("manifest.name is required")
	}
	if mf.Description == "" {
		return nil, errors.New("manifest.description is required")
	}
	if len(mf.Commands) == 0 {
		return nil, errors.New("manifest contains no commands")
	}
	seen := map[string]int{}
	for i, c := range mf.Commands {
		name := strings.TrimSpace(c.Command)
		if name == "" {
			return nil, fmt.Errorf("commands[%d].command is required", i)
		}
		if j, dup := seen[name]; dup {
			return nil, fmt.Errorf("commands[%d] duplicates commands[%d]: %s", i, j, name)
		}
		seen[name] = i
		mf.Commands[i].Command = name
	}
	return mf, nil
}
