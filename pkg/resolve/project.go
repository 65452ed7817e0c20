package resolve

import "context"

var currentProjectTarget = []string{"GetProjectManager", "GetCurrentProject"}

// Project represents an open project. Scripting objects cannot survive a
// host round-trip, so methods act on the currently open project; Name is the
// name the project had when the handle was created.
type Project struct {
	c    *Client
	name string
}

// Name returns the project name recorded when the handle was created.
func (p *Project) Name() string {
	return p.name
}

// GetName asks the vendor for the current name of the open project.
func (p *Project) GetName(ctx context.Context) (string, error) {
	result, err := p.c.invoke(ctx, currentProjectTarget, "GetName")
	if err != nil {
		return "", err
	}

	return result.Str(), nil
}

// SetName renames the open project.
func (p *Project) SetName(ctx context.Context, name string) (bool, error) {
	result, err := p.c.invoke(ctx, currentProjectTarget, "SetName", name)
	if err != nil {
		return false, err
	}

	if result.Bool() {
		p.name = name
	}

	return result.Bool(), nil
}
