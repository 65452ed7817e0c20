package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlaggedCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().Bool("verbose", false, "")
	cmd.Flags().Bool("logs", false, "")
	cmd.Flags().String("path", "", "")
	cmd.Flags().Bool("nogui", false, "")
	cmd.Flags().Bool("no-wait", false, "")
	return cmd
}

func TestNewConfigFromFlags_Defaults(t *testing.T) {
	// Cannot use t.Parallel() - reads environment and working directory

	cmd := newFlaggedCommand()
	require.NoError(t, cmd.Execute())

	cfg := NewConfigFromFlags(cmd)

	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.ShowLogs)
	assert.False(t, cfg.NoGUI)
	assert.False(t, cfg.NoWait)
	assert.Empty(t, cfg.ExecutablePath)
}

func TestNewConfigFromFlags_FlagsWin(t *testing.T) {
	// Cannot use t.Parallel() - reads environment and working directory

	cmd := newFlaggedCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Flags().Set("verbose", "true"))
	require.NoError(t, cmd.Flags().Set("nogui", "true"))
	require.NoError(t, cmd.Flags().Set("path", "D:\\Resolve\\Resolve.exe"))

	cfg := NewConfigFromFlags(cmd)

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoGUI)
	assert.Equal(t, "D:\\Resolve\\Resolve.exe", cfg.ExecutablePath)
}

func TestNewConfigFromFlags_EnvOverride(t *testing.T) {
	// Cannot use t.Parallel() - modifies environment variables

	os.Setenv("DVRC_NOGUI", "true")
	defer os.Unsetenv("DVRC_NOGUI")

	cmd := newFlaggedCommand()
	require.NoError(t, cmd.Execute())

	cfg := NewConfigFromFlags(cmd)

	assert.True(t, cfg.NoGUI, "Environment variables should fill in unset flags")
}

func TestNewConfigFromFlags_ConfigFile(t *testing.T) {
	// Cannot use t.Parallel() - modifies environment variables

	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, "dvrc")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "dvrc.yml"),
		[]byte("path: D:\\Custom\\Resolve.exe\nnogui: true\n"),
		0o644,
	))

	oldLocalAppData := os.Getenv("LOCALAPPDATA")
	defer os.Setenv("LOCALAPPDATA", oldLocalAppData)
	os.Setenv("LOCALAPPDATA", tmpDir)

	cmd := newFlaggedCommand()
	require.NoError(t, cmd.Execute())

	cfg := NewConfigFromFlags(cmd)

	assert.Equal(t, "D:\\Custom\\Resolve.exe", cfg.ExecutablePath)
	assert.True(t, cfg.NoGUI)
}
