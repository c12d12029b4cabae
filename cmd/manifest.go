package cmd

// manifest models the optional YAML file that replaces the built-in command
// battery. It captures report metadata and the list of commands to execute.
type manifest struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Commands    []commandEntry `yaml:"commands"`
}

// commandEntry is one battery command.
type commandEntry struct {
	// "command" is preferred; "cmd" also accepted during unmarshal
	Command string `yaml:"command"`
}
