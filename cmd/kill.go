package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/dvrc/pkg/resolve"
)

var killCmd = &cobra.Command{
	Use:   "kill",
	Short: "Forcibly terminate the running DaVinci Resolve process",
	Args:  cobra.NoArgs,
	RunE:  runKill,
}

func init() {
	RootCmd.AddCommand(killCmd)
}

func runKill(cmd *cobra.Command, args []string) error {
	_, log, cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}

	defer cleanup()

	supervisor := newSupervisor(log)

	if err := supervisor.Kill(cmd.Context()); err != nil {
		if errors.Is(err, resolve.ErrNotRunning) {
			fmt.Println("DaVinci Resolve is not running.")
			return nil
		}

		log.Error("Kill failed", slog.Any("error", err))
		return err
	}

	fmt.Println("DaVinci Resolve terminated.")
	return nil
}
