package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/dvrc/internal/timeouts"
	"github.com/Norgate-AV/dvrc/pkg/resolve"
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Browse media storage and import clips into the media pool",
}

var storageVolumesCmd = &cobra.Command{
	Use:   "volumes",
	Short: "List mounted media storage volumes",
	Args:  cobra.NoArgs,
	RunE: withStorage(func(ctx context.Context, storage *resolve.MediaStorage, args []string) error {
		volumes, err := storage.GetMountedVolumeList(ctx)
		if err != nil {
			return err
		}

		printLines(volumes)
		return nil
	}),
}

var storageFoldersCmd = &cobra.Command{
	Use:   "folders <path>",
	Short: "List the sub folders of a media storage folder",
	Args:  cobra.ExactArgs(1),
	RunE: withStorage(func(ctx context.Context, storage *resolve.MediaStorage, args []string) error {
		folders, err := storage.GetSubFolderList(ctx, args[0])
		if err != nil {
			return err
		}

		printLines(folders)
		return nil
	}),
}

var storageFilesCmd = &cobra.Command{
	Use:   "files <path>",
	Short: "List the media files in a media storage folder",
	Args:  cobra.ExactArgs(1),
	RunE: withStorage(func(ctx context.Context, storage *resolve.MediaStorage, args []string) error {
		files, err := storage.GetFileList(ctx, args[0])
		if err != nil {
			return err
		}

		printLines(files)
		return nil
	}),
}

var storageRevealCmd = &cobra.Command{
	Use:   "reveal <path>",
	Short: "Reveal a path on the media storage page",
	Args:  cobra.ExactArgs(1),
	RunE: withStorage(func(ctx context.Context, storage *resolve.MediaStorage, args []string) error {
		ok, err := storage.RevealInStorage(ctx, args[0])
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not reveal %s", args[0])
		}

		return nil
	}),
}

var storageAddCmd = &cobra.Command{
	Use:   "add <path>...",
	Short: "Import files or folders into the current media pool folder",
	Args:  cobra.MinimumNArgs(1),
	RunE: withStorage(func(ctx context.Context, storage *resolve.MediaStorage, args []string) error {
		items, err := storage.AddItemListToMediaPool(ctx, args)
		if err != nil {
			return err
		}

		for _, item := range items {
			fmt.Println(item.Name)
		}

		fmt.Printf("Added %d item(s) to the media pool.\n", len(items))
		return nil
	}),
}

var storageAddMattesCmd = &cobra.Command{
	Use:   "add-mattes <clip-name> <matte-path>...",
	Short: "Attach matte files to a clip in the current media pool folder",
	Args:  cobra.MinimumNArgs(2),
}

// The RunE is assigned in init rather than in the literal above: its body
// reads the --eye flag back off storageAddMattesCmd, which would otherwise
// form a package-initialization cycle.
func init() {
	storageAddMattesCmd.RunE = withStorage(func(ctx context.Context, storage *resolve.MediaStorage, args []string) error {
		eye, err := stereoEyeFlagValue()
		if err != nil {
			return err
		}

		ok, err := storage.AddClipMattesToMediaPool(ctx, args[0], args[1:], eye)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not add mattes to %q", args[0])
		}

		fmt.Printf("Added %d matte(s) to %q.\n", len(args)-1, args[0])
		return nil
	})
}

var storageAddTimelineMattesCmd = &cobra.Command{
	Use:   "add-timeline-mattes <matte-path>...",
	Short: "Import timeline matte files into the current media pool folder",
	Args:  cobra.MinimumNArgs(1),
	RunE: withStorage(func(ctx context.Context, storage *resolve.MediaStorage, args []string) error {
		items, err := storage.AddTimelineMattesToMediaPool(ctx, args)
		if err != nil {
			return err
		}

		for _, item := range items {
			fmt.Println(item.Name)
		}

		fmt.Printf("Added %d timeline matte(s) to the media pool.\n", len(items))
		return nil
	}),
}

func init() {
	storageAddMattesCmd.Flags().String("eye", "", "stereo eye for the mattes (left or right)")

	storageCmd.AddCommand(storageVolumesCmd)
	storageCmd.AddCommand(storageFoldersCmd)
	storageCmd.AddCommand(storageFilesCmd)
	storageCmd.AddCommand(storageRevealCmd)
	storageCmd.AddCommand(storageAddCmd)
	storageCmd.AddCommand(storageAddMattesCmd)
	storageCmd.AddCommand(storageAddTimelineMattesCmd)
	RootCmd.AddCommand(storageCmd)
}

// withStorage wraps a storage subcommand body with the shared setup, client
// construction and call timeout.
func withStorage(run func(ctx context.Context, storage *resolve.MediaStorage, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
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

		if err := run(ctx, client.MediaStorage(), args); err != nil {
			log.Error("Storage command failed", slog.Any("error", err))
			return err
		}

		return nil
	}
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Println(line)
	}
}

// stereoEyeFlagValue reads the --eye flag off the add-mattes command.
func stereoEyeFlagValue() (resolve.StereoEye, error) {
	eye, err := storageAddMattesCmd.Flags().GetString("eye")
	if err != nil {
		return resolve.StereoEyeNone, err
	}

	switch resolve.StereoEye(eye) {
	case resolve.StereoEyeNone, resolve.StereoEyeLeft, resolve.StereoEyeRight:
		return resolve.StereoEye(eye), nil
	default:
		return resolve.StereoEyeNone, fmt.Errorf("invalid eye %q, expected left or right", eye)
	}
}
