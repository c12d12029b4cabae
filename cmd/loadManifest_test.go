package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadManifest_Valid(t *testing.T) {
	tmp := t.TempDir()
	p := writeTemp(t, tmp, "m.yaml", `
name: nightly
description: reduced battery
commands:
  - command: lssystem
  - cmd: lshost
`)
	mf, err := loadManifest(p)
	require.NoError(t, err)
	require.Equal(t, "nightly", mf.Name)
	require.Len(t, mf.Commands, 2)
	require.Equal(t, "lssystem", mf.Commands[0].Command)
	// "cmd" alias accepted
	require.Equal(t, "lshost", mf.Commands[1].Command)
}

func TestLoadManifest_Invalid(t *testing.T) {
	tmp := t.TempDir()

	_, err := loadManifest(writeTemp(t, tmp, "noname.yaml", `
description: D
commands:
  - command: lssystem
`))
	require.ErrorContains(t, err, "manifest.name is required")

	_, err = loadManifest(writeTemp(t, tmp, "nodesc.yaml", `
name: N
commands:
  - command: lssystem
`))
	require.ErrorContains(t, err, "manifest.description is required")

	_, err = loadManifest(writeTemp(t, tmp, "empty.yaml", `
name: N
description: D
`))
	require.ErrorContains(t, err, "no commands")

	_, err = loadManifest(writeTemp(t, tmp, "blank.yaml", `
name: N
description: D
commands:
  - command: ""
`))
	require.ErrorContains(t, err, "commands[0].command is required")

	_, err = loadManifest(writeTemp(t, tmp, "missing.yaml", ``))
	require.Error(t, err)

	_, err = loadManifest(tmp + "/does-not-exist.yaml")
	require.Error(t, err)
}

// Sheet names must be unique, so duplicate commands are rejected at load.
func TestLoadManifest_DuplicateCommand(t *testing.T) {
	tmp := t.TempDir()
	_, err := loadManifest(writeTemp(t, tmp, "dup.yaml", `
name: N
description: D
commands:
  - command: lshost
  - command: lsvdisk
  - command: lshost
`))
	require.ErrorContains(t, err, "duplicates")
}

func TestBattery_DefaultAndManifest(t *testing.T) {
	resetConfig()
	commands, err := battery()
	require.NoError(t, err)
	require.Equal(t, defaultBattery, commands)
	require.Equal(t, "lssystem", commands[0])
	require.Equal(t, "lseventlog", commands[len(commands)-1])

	// Mutating the returned slice must not touch the package default.
	commands[0] = "mutated"
	require.Equal(t, "lssystem", defaultBattery[0])

	tmp := t.TempDir()
	cfgManifest = writeTemp(t, tmp, "m.yaml", `
name: N
description: D
commands:
  - command: lshost
`)
	t.Cleanup(resetConfig)
	commands, err = battery()
	require.NoError(t, err)
	require.Equal(t, []string{"lshost"}, commands)
}
