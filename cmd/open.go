package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/dvrc/internal/logger"
	"github.com/Norgate-AV/dvrc/internal/scripting"
	"github.com/Norgate-AV/dvrc/pkg/resolve"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Launch DaVinci Resolve and wait for it to come up",
	Args:  cobra.NoArgs,
	RunE:  runOpen,
}

func init() {
	openCmd.Flags().Bool("nogui", false, "launch headless (no user interface)")
	openCmd.Flags().Bool("no-wait", false, "return as soon as the process appears")
	RootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg, log, cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}

	defer cleanup()

	// The supervisor stats the executable path itself and reports its own
	// not-found message.
	supervisor := newSupervisor(log)

	msg, err := supervisor.Open(cmd.Context(), resolve.OpenOptions{
		ExecutablePath:   cfg.ExecutablePath,
		NoGUI:            cfg.NoGUI,
		WaitForWindow:    !cfg.NoWait && !cfg.NoGUI,
		WaitForScripting: !cfg.NoWait,
	})
	if err != nil {
		log.Error("Open failed", slog.Any("error", err))
		return err
	}

	log.Info(msg)
	fmt.Println(msg)
	return nil
}

func newSupervisor(log logger.LoggerInterface) *resolve.Supervisor {
	bridge := scripting.NewHost(resolve.GetFuscriptPath(), log)
	return resolve.NewSupervisor(log, bridge)
}
