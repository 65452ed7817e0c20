//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norgate-AV/dvrc/internal/logger"
	"github.com/Norgate-AV/dvrc/internal/scripting"
	"github.com/Norgate-AV/dvrc/pkg/resolve"
)

// requireInstallation skips the test when Resolve is not installed on this
// machine.
func requireInstallation(t *testing.T) {
	t.Helper()

	if err := resolve.ValidateInstallation(); err != nil {
		t.Skipf("DaVinci Resolve is not installed: %v", err)
	}
}

func newIntegrationClient(t *testing.T) (*resolve.Client, logger.LoggerInterface) {
	t.Helper()

	log, err := logger.NewLogger(logger.LoggerOptions{Verbose: true})
	require.NoError(t, err, "Should create logger")
	t.Cleanup(log.Close)

	return resolve.NewClient(log), log
}

// TestIntegration_OpenStatusKill exercises the full process lifecycle:
// launch, wait for the scripting service, query it, then terminate.
func TestIntegration_OpenStatusKill(t *testing.T) {
	requireInstallation(t)

	client, log := newIntegrationClient(t)

	bridge := scripting.NewHost(resolve.GetFuscriptPath(), log)
	supervisor := resolve.NewSupervisor(log, bridge)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	msg, err := supervisor.Open(ctx, resolve.OpenOptions{
		NoGUI:            true,
		WaitForScripting: true,
	})
	require.NoError(t, err, "Open should succeed")

	if _, wasRunning := supervisor.IsRunning(); !wasRunning {
		assert.Equal(t, "DaVinci Resolve opened successfully.", msg)
	}

	name, err := client.GetProductName(ctx)
	require.NoError(t, err, "Scripting service should answer")
	assert.Equal(t, "DaVinci Resolve", name)

	version, err := client.GetVersionString(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, version)

	require.NoError(t, supervisor.Kill(ctx), "Kill should succeed")

	_, running := supervisor.IsRunning()
	assert.False(t, running, "Process should be gone after Kill")
}

// TestIntegration_MediaStorageListing lists mounted volumes against a live
// instance.
func TestIntegration_MediaStorageListing(t *testing.T) {
	requireInstallation(t)

	client, _ := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		t.Skipf("Resolve scripting service is not up: %v", err)
	}

	volumes, err := client.MediaStorage().GetMountedVolumeList(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, volumes, "A Windows machine should report at least one volume")
}

// TestIntegration_ProjectRoundTrip creates, saves, closes and deletes a
// scratch project against a live instance.
func TestIntegration_ProjectRoundTrip(t *testing.T) {
	requireInstallation(t)

	client, _ := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		t.Skipf("Resolve scripting service is not up: %v", err)
	}

	pm := client.ProjectManager()
	name := "dvrc-integration-" + time.Now().Format("20060102-150405")

	project, err := pm.CreateProject(ctx, name)
	require.NoError(t, err, "Should create scratch project")
	assert.Equal(t, name, project.Name())

	ok, err := pm.SaveProject(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "Should save scratch project")

	ok, err = pm.CloseProject(ctx)
	require.NoError(t, err)
	assert.True(t, ok, "Should close scratch project")

	ok, err = pm.DeleteProject(ctx, name)
	require.NoError(t, err)
	assert.True(t, ok, "Should delete scratch project")
}

// TestIntegration_InstallationValidation only needs the filesystem.
func TestIntegration_InstallationValidation(t *testing.T) {
	// No live instance needed, just the installed files.
	if _, err := os.Stat(resolve.GetResolvePath()); os.IsNotExist(err) {
		t.Skip("DaVinci Resolve is not installed")
	}

	assert.NoError(t, resolve.ValidateInstallation())
	assert.FileExists(t, resolve.GetFuscriptPath(), "fuscript should ship with the installation")
}
