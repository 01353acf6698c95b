// FILE: lixenwraith/mvconfig/cmd/mvconfig/main_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command and returns its exit code, stdout and stderr
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(func() { flags = buildFlags{} })

	var out, errOut bytes.Buffer
	code := execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeProperties(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.properties")
	require.NoError(t, os.WriteFile(path, []byte("hosts=a,b\nport=80\n"), 0644))
	return path
}

func TestDumpCommand(t *testing.T) {
	path := writeProperties(t)

	code, out, _ := runCLI(t, "dump", path, "--delimiter", ",", "--prefix", "mvctest", "--env-overrides", "--set", "mvctest.port=9090")
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "hosts=a\nhosts=b\nport=9090\n", out)
}

func TestGetCommand(t *testing.T) {
	path := writeProperties(t)

	t.Run("PrintsValues", func(t *testing.T) {
		code, out, _ := runCLI(t, "get", path, "hosts", "--delimiter", ",")
		assert.Equal(t, ExitSuccess, code)
		assert.Equal(t, "a\nb\n", out)
	})

	t.Run("MissingKey", func(t *testing.T) {
		code, out, _ := runCLI(t, "get", path, "absent")
		assert.Equal(t, ExitNotFound, code)
		assert.Empty(t, out)
	})

	t.Run("MissingFile", func(t *testing.T) {
		code, out, errOut := runCLI(t, "get", filepath.Join(t.TempDir(), "none.properties"), "hosts")
		assert.Equal(t, ExitLoadError, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "Error:")
	})

	t.Run("WrongArgCount", func(t *testing.T) {
		code, _, errOut := runCLI(t, "get", path)
		assert.Equal(t, ExitUsageError, code)
		assert.Contains(t, errOut, "Error:")
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		code, _, _ := runCLI(t, "get", path, "hosts", "--no-such-flag")
		assert.Equal(t, ExitUsageError, code)
	})
}
