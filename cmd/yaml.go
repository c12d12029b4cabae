package cmd

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlUnmarshal is a small wrapper so the yaml import stays in one place.
func yamlUnmarshal(b []byte, out any) error {
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("yaml unmarshal: %w", err)
	}
	return nil
}

// UnmarshalYAML supports both "command" and "cmd" keys for flexibility
func (c *commandEntry) UnmarshalYAML(value *yaml.Node) error {
	var aux struct {
		Command string `yaml:"command"`
		Cmd     string `yaml:"cmd"`
	}
	if err := value.Decode(&aux); err != nil {
		return err
	}
	c.Command = aux.Command
	if c.Command == "" {
		c.Command = aux.Cmd
	}
	return nil
}
