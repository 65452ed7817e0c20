package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Norgate-AV/dvrc/internal/timeouts"
	"github.com/Norgate-AV/dvrc/pkg/resolve"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage Resolve projects, folders and databases",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the projects in the current folder",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		projects, err := pm.GetProjectListInCurrentFolder(ctx)
		if err != nil {
			return err
		}

		printLines(projects)
		return nil
	}),
}

var projectFoldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "List the folders in the current folder",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		folders, err := pm.GetFolderListInCurrentFolder(ctx)
		if err != nil {
			return err
		}

		printLines(folders)
		return nil
	}),
}

var projectCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the name of the currently open project",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		project, err := pm.GetCurrentProject(ctx)
		if err != nil {
			return err
		}

		fmt.Println(project.Name())
		return nil
	}),
}

var projectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create and open a project in the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		project, err := pm.CreateProject(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Created project %q.\n", project.Name())
		return nil
	}),
}

var projectLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Open a project from the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		project, err := pm.LoadProject(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Loaded project %q.\n", project.Name())
		return nil
	}),
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a project from the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		ok, err := pm.DeleteProject(ctx, args[0])
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not delete project %q, it may be open", args[0])
		}

		fmt.Printf("Deleted project %q.\n", args[0])
		return nil
	}),
}

var projectSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the currently open project",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		ok, err := pm.SaveProject(ctx)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not save the current project")
		}

		fmt.Println("Project saved.")
		return nil
	}),
}

var projectCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close the currently open project without saving",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		ok, err := pm.CloseProject(ctx)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not close the current project")
		}

		fmt.Println("Project closed.")
		return nil
	}),
}

var projectArchiveCmd = &cobra.Command{
	Use:   "archive <name> <file>",
	Short: "Archive a project, with media, to a file",
	Args:  cobra.ExactArgs(2),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		ok, err := pm.ArchiveProject(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not archive project %q", args[0])
		}

		fmt.Printf("Archived project %q to %s.\n", args[0], args[1])
		return nil
	}),
}

var projectExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Export a project to a project file",
	Args:  cobra.ExactArgs(2),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		ok, err := pm.ExportProject(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not export project %q", args[0])
		}

		fmt.Printf("Exported project %q to %s.\n", args[0], args[1])
		return nil
	}),
}

var projectImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a project file into the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		ok, err := pm.ImportProject(ctx, args[0])
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not import %s", args[0])
		}

		fmt.Printf("Imported %s.\n", args[0])
		return nil
	}),
}

var projectRestoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Restore a project archive into the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		ok, err := pm.RestoreProject(ctx, args[0])
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("Resolve could not restore %s", args[0])
		}

		fmt.Printf("Restored %s.\n", args[0])
		return nil
	}),
}

var projectFolderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Navigate and manage project folders",
}

var projectFolderShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the name of the current folder",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		name, err := pm.GetCurrentFolder(ctx)
		if err != nil {
			return err
		}

		fmt.Println(name)
		return nil
	}),
}

var projectFolderRootCmd = &cobra.Command{
	Use:   "root",
	Short: "Go to the root folder",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		return reportNavigation(pm.GotoRootFolder(ctx))
	}),
}

var projectFolderUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Go to the parent folder",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		return reportNavigation(pm.GotoParentFolder(ctx))
	}),
}

var projectFolderOpenCmd = &cobra.Command{
	Use:   "open <name>",
	Short: "Open a folder inside the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		return reportNavigation(pm.OpenFolder(ctx, args[0]))
	}),
}

var projectFolderCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a folder inside the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		return reportNavigation(pm.CreateFolder(ctx, args[0]))
	}),
}

var projectFolderDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a folder inside the current folder",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		return reportNavigation(pm.DeleteFolder(ctx, args[0]))
	}),
}

var projectDbCmd = &cobra.Command{
	Use:   "db",
	Short: "List and select project databases",
}

var projectDbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the project databases known to this installation",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		dbs, err := pm.GetDatabaseList(ctx)
		if err != nil {
			return err
		}

		for _, db := range dbs {
			printDatabase(db)
		}

		return nil
	}),
}

var projectDbCurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the currently selected project database",
	Args:  cobra.NoArgs,
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		db, err := pm.GetCurrentDatabase(ctx)
		if err != nil {
			return err
		}

		printDatabase(db)
		return nil
	}),
}

var projectDbUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch to the named project database",
	Args:  cobra.ExactArgs(1),
	RunE: withProjectManager(func(ctx context.Context, pm *resolve.ProjectManager, args []string) error {
		// Resolve identifies databases by the full descriptor, so look the
		// name up in the known list first.
		dbs, err := pm.GetDatabaseList(ctx)
		if err != nil {
			return err
		}

		for _, db := range dbs {
			if db.DbName != args[0] {
				continue
			}

			ok, err := pm.SetCurrentDatabase(ctx, db)
			if err != nil {
				return err
			}

			if !ok {
				return fmt.Errorf("Resolve could not switch to database %q", args[0])
			}

			fmt.Printf("Switched to database %q.\n", args[0])
			return nil
		}

		return fmt.Errorf("no database named %q", args[0])
	}),
}

func init() {
	projectFolderCmd.AddCommand(projectFolderShowCmd)
	projectFolderCmd.AddCommand(projectFolderRootCmd)
	projectFolderCmd.AddCommand(projectFolderUpCmd)
	projectFolderCmd.AddCommand(projectFolderOpenCmd)
	projectFolderCmd.AddCommand(projectFolderCreateCmd)
	projectFolderCmd.AddCommand(projectFolderDeleteCmd)

	projectDbCmd.AddCommand(projectDbListCmd)
	projectDbCmd.AddCommand(projectDbCurrentCmd)
	projectDbCmd.AddCommand(projectDbUseCmd)

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectFoldersCmd)
	projectCmd.AddCommand(projectCurrentCmd)
	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectLoadCmd)
	projectCmd.AddCommand(projectDeleteCmd)
	projectCmd.AddCommand(projectSaveCmd)
	projectCmd.AddCommand(projectCloseCmd)
	projectCmd.AddCommand(projectArchiveCmd)
	projectCmd.AddCommand(projectExportCmd)
	projectCmd.AddCommand(projectImportCmd)
	projectCmd.AddCommand(projectRestoreCmd)
	projectCmd.AddCommand(projectFolderCmd)
	projectCmd.AddCommand(projectDbCmd)
	RootCmd.AddCommand(projectCmd)
}

// withProjectManager wraps a project subcommand body with the shared setup,
// client construction and call timeout.
func withProjectManager(run func(ctx context.Context, pm *resolve.ProjectManager, args []string) error) func(cmd *cobra.Command, args []string) error {
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

		if err := run(ctx, client.ProjectManager(), args); err != nil {
			log.Error("Project command failed", slog.Any("error", err))
			return err
		}

		return nil
	}
}

func reportNavigation(ok bool, err error) error {
	if err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("Resolve declined the folder operation")
	}

	return nil
}

func printDatabase(db resolve.DatabaseInfo) {
	if db.IPAddress != "" {
		fmt.Printf("%s (%s, %s)\n", db.DbName, db.DbType, db.IPAddress)
		return
	}

	fmt.Printf("%s (%s)\n", db.DbName, db.DbType)
}
