package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Norgate-AV/dvrc/internal/timeouts"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether DaVinci Resolve is running and scriptable",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	RootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, log, cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}

	defer cleanup()

	supervisor := newSupervisor(log)

	pid, running := supervisor.IsRunning()
	if !running {
		fmt.Printf("%s DaVinci Resolve is not running\n", color.RedString("●"))
		return nil
	}

	fmt.Printf("%s DaVinci Resolve is running (pid %d)\n", color.GreenString("●"), pid)

	client, err := newClient(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.ScriptPingTimeout)
	defer cancel()

	version, err := client.GetVersionString(ctx)
	if err != nil {
		log.Debug("Scripting service not reachable", slog.Any("error", err))
		fmt.Printf("%s scripting service is not responding\n", color.YellowString("●"))
		return nil
	}

	fmt.Printf("%s scripting service is up (version %s)\n", color.GreenString("●"), version)
	return nil
}
