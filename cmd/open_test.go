package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/dvrc/internal/windows"
	"github.com/Norgate-AV/dvrc/pkg/resolve"
)

// TestOpenCmd_ExecutableNotFound verifies the open command surfaces the
// supervisor's not-found message for a bad executable path.
func TestOpenCmd_ExecutableNotFound(t *testing.T) {
	// Cannot use t.Parallel() - modifies environment variables

	if _, running := windows.FindProcessByName(resolve.ProcessName); running {
		t.Skip("DaVinci Resolve is running on this machine")
	}

	resetFlags()
	defer resetFlags()

	tmpDir := t.TempDir()

	oldLocalAppData := os.Getenv("LOCALAPPDATA")
	defer os.Setenv("LOCALAPPDATA", oldLocalAppData)
	os.Setenv("LOCALAPPDATA", tmpDir)

	oldResolvePath := os.Getenv("RESOLVE_PATH")
	defer os.Setenv("RESOLVE_PATH", oldResolvePath)

	missing := filepath.Join(tmpDir, "Resolve.exe")

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs([]string{"open", "--path", missing})
	defer RootCmd.SetArgs(nil)
	defer RootCmd.SetOut(nil)
	defer RootCmd.SetErr(nil)

	err := RootCmd.Execute()

	require.Error(t, err)
	assert.Equal(t,
		fmt.Sprintf("Resolve executable not found at '%s'. Please check the path and try again", missing),
		err.Error())
	assert.Contains(t, out.String(), "Resolve executable not found at", "cobra should print the message with its Error: prefix")
}
