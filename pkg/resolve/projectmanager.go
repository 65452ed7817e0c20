package resolve

import (
	"context"
	"fmt"

	"github.com/Norgate-AV/dvrc/internal/scripting"
)

var projectManagerTarget = []string{"GetProjectManager"}

// ProjectManager exposes the vendor's project manager subsystem: project
// lifecycle, folder navigation and database selection.
type ProjectManager struct {
	c *Client
}

// CreateProject creates and opens a project with the given name in the
// current folder. The vendor refuses duplicate names, which surfaces here as
// ErrProjectUnavailable.
func (p *ProjectManager) CreateProject(ctx context.Context, name string) (*Project, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "CreateProject", name)
	if err != nil {
		return nil, err
	}

	return p.projectFromResult(name, result)
}

// DeleteProject removes the named project from the current folder. The
// project must not be open.
func (p *ProjectManager) DeleteProject(ctx context.Context, name string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "DeleteProject", name)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// LoadProject opens the named project from the current folder.
func (p *ProjectManager) LoadProject(ctx context.Context, name string) (*Project, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "LoadProject", name)
	if err != nil {
		return nil, err
	}

	return p.projectFromResult(name, result)
}

// SaveProject saves the currently open project.
func (p *ProjectManager) SaveProject(ctx context.Context) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "SaveProject")
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// CloseProject closes the currently open project without saving.
func (p *ProjectManager) CloseProject(ctx context.Context) (bool, error) {
	result, err := p.c.bridge.Invoke(ctx, scripting.Call{
		Target:         projectManagerTarget,
		Method:         "CloseProject",
		CurrentProject: true,
	})
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// ArchiveProject exports the named project, with media, to an archive file.
func (p *ProjectManager) ArchiveProject(ctx context.Context, name, filePath string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "ArchiveProject", name, filePath)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// ImportProject imports a project file into the current folder.
func (p *ProjectManager) ImportProject(ctx context.Context, filePath string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "ImportProject", filePath)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// ExportProject exports the named project to a project file.
func (p *ProjectManager) ExportProject(ctx context.Context, name, filePath string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "ExportProject", name, filePath)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// RestoreProject restores a project from an archive file into the current
// folder.
func (p *ProjectManager) RestoreProject(ctx context.Context, filePath string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "RestoreProject", filePath)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// GetCurrentProject returns the currently open project, or
// ErrNoCurrentProject when none is open.
func (p *ProjectManager) GetCurrentProject(ctx context.Context) (*Project, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GetCurrentProject")
	if err != nil {
		return nil, err
	}

	if result.IsNull() {
		return nil, ErrNoCurrentProject
	}

	return &Project{c: p.c, name: projectNameFromResult(result)}, nil
}

// GetProjectListInCurrentFolder returns the names of the projects in the
// current folder.
func (p *ProjectManager) GetProjectListInCurrentFolder(ctx context.Context) ([]string, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GetProjectListInCurrentFolder")
	if err != nil {
		return nil, err
	}

	return result.StringSlice(), nil
}

// GetFolderListInCurrentFolder returns the names of the folders in the
// current folder.
func (p *ProjectManager) GetFolderListInCurrentFolder(ctx context.Context) ([]string, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GetFolderListInCurrentFolder")
	if err != nil {
		return nil, err
	}

	return result.StringSlice(), nil
}

// GetCurrentFolder returns the name of the current folder.
func (p *ProjectManager) GetCurrentFolder(ctx context.Context) (string, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GetCurrentFolder")
	if err != nil {
		return "", err
	}

	return result.Str(), nil
}

// GotoRootFolder navigates to the root folder of the current database.
func (p *ProjectManager) GotoRootFolder(ctx context.Context) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GotoRootFolder")
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// GotoParentFolder navigates to the parent of the current folder.
func (p *ProjectManager) GotoParentFolder(ctx context.Context) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GotoParentFolder")
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// OpenFolder navigates into the named folder inside the current folder.
func (p *ProjectManager) OpenFolder(ctx context.Context, name string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "OpenFolder", name)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// CreateFolder creates a folder with the given name inside the current
// folder.
func (p *ProjectManager) CreateFolder(ctx context.Context, name string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "CreateFolder", name)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// DeleteFolder removes the named folder, and everything it contains, from
// the current folder.
func (p *ProjectManager) DeleteFolder(ctx context.Context, name string) (bool, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "DeleteFolder", name)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

// GetCurrentDatabase returns the descriptor of the currently selected
// project database.
func (p *ProjectManager) GetCurrentDatabase(ctx context.Context) (DatabaseInfo, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GetCurrentDatabase")
	if err != nil {
		return DatabaseInfo{}, err
	}

	return decodeDatabaseInfo(result.Value())
}

// GetDatabaseList returns the descriptors of all project databases known to
// this installation.
func (p *ProjectManager) GetDatabaseList(ctx context.Context) ([]DatabaseInfo, error) {
	result, err := p.c.invoke(ctx, projectManagerTarget, "GetDatabaseList")
	if err != nil {
		return nil, err
	}

	values, ok := result.Value().([]any)
	if !ok {
		if result.IsNull() {
			return nil, nil
		}

		return nil, fmt.Errorf("expected a list of databases, got %s", result.Raw())
	}

	infos := make([]DatabaseInfo, 0, len(values))

	for _, value := range values {
		info, err := decodeDatabaseInfo(value)
		if err != nil {
			return nil, err
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// SetCurrentDatabase switches to the database matching the given descriptor.
// IPAddress may be empty for local databases.
func (p *ProjectManager) SetCurrentDatabase(ctx context.Context, info DatabaseInfo) (bool, error) {
	arg := map[string]string{
		"DbType": info.DbType,
		"DbName": info.DbName,
	}
	if info.IPAddress != "" {
		arg["IpAddress"] = info.IPAddress
	}

	result, err := p.c.invoke(ctx, projectManagerTarget, "SetCurrentDatabase", arg)
	if err != nil {
		return false, err
	}

	return result.Bool(), nil
}

func (p *ProjectManager) projectFromResult(name string, result scripting.Result) (*Project, error) {
	if result.IsNull() {
		return nil, fmt.Errorf("project %q: %w", name, ErrProjectUnavailable)
	}

	if got := projectNameFromResult(result); got != "" {
		name = got
	}

	return &Project{c: p.c, name: name}, nil
}

// projectNameFromResult extracts the project name from a reply. Project
// objects arrive as {"name": ...} snapshots; older vendor builds return the
// name as a bare string.
func projectNameFromResult(result scripting.Result) string {
	switch v := result.Value().(type) {
	case string:
		return v
	case map[string]any:
		if name, ok := v["name"].(string); ok {
			return name
		}
	}

	return ""
}
