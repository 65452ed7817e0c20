package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/dvrc/internal/timeouts"
)

var validPages = []string{"media", "cut", "edit", "fusion", "color", "fairlight", "deliver"}

var pageCmd = &cobra.Command{
	Use:   "page [name]",
	Short: "Show or switch the current Resolve page",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPage,
}

func init() {
	RootCmd.AddCommand(pageCmd)
}

func runPage(cmd *cobra.Command, args []string) error {
	_, log, cleanup, err := setupRun(cmd)
	if err != nil {
		return err
	}

	defer cleanup()

	client, err := newClient(log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.ScriptCallTimeout)
	defer cancel()

	if len(args) == 0 {
		page, err := client.GetCurrentPage(ctx)
		if err != nil {
			log.Error("GetCurrentPage failed", slog.Any("error", err))
			return err
		}

		fmt.Println(page)
		return nil
	}

	page := args[0]
	if !isValidPage(page) {
		return fmt.Errorf("unknown page %q, expected one of %v", page, validPages)
	}

	ok, err := client.OpenPage(ctx, page)
	if err != nil {
		log.Error("OpenPage failed", slog.Any("error", err))
		return err
	}

	if !ok {
		return fmt.Errorf("Resolve declined to switch to the %s page", page)
	}

	fmt.Printf("Switched to the %s page.\n", page)
	return nil
}

func isValidPage(page string) bool {
	for _, p := range validPages {
		if p == page {
			return true
		}
	}

	return false
}
