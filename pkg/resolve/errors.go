package resolve

import "errors"

var (
	// ErrNoCurrentProject is returned when a call needs an open project and
	// the project manager reports none.
	ErrNoCurrentProject = errors.New("no project is currently open")

	// ErrProjectUnavailable is returned when the project manager declines to
	// create or load a project. The vendor side reports this as a bare null,
	// so no further detail is available.
	ErrProjectUnavailable = errors.New("the project manager returned no project")

	// ErrNotRunning is returned by supervisor operations that need a live
	// Resolve process.
	ErrNotRunning = errors.New("DaVinci Resolve is not running")
)
