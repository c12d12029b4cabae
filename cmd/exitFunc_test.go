package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitFunc_OverrideAndCall(t *testing.T) {
	orig := exitFunc
	t.Cleanup(func() { exitFunc = orig })
	called := 0
	exitFunc = func(code int) { called = code }
	exitFunc(3)
	require.Equal(t, 3, called)
}

// Superuser account error prints to stdout and exits with code 1
func TestExecute_SuperuserStdoutExit1(t *testing.T) {
	resetConfig()
	rootCmd.SetArgs([]string{"--array", "10.0.0.1", "--user", "superuser", "--password", "pw"})

	// Capture stdout
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	// Stub exit
	code := 0
	origExit := exitFunc
	exitFunc = func(c int) { code = c }
	defer func() { exitFunc = origExit }()

	Execute()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	require.Contains(t, buf.String(), errSuperUser.Error())
	require.Equal(t, 1, code)
}
