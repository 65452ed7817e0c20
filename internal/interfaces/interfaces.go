// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

import (
	"context"

	"github.com/Norgate-AV/dvrc/internal/scripting"
)

// Bridge executes scripting calls against the Resolve scripting service
type Bridge interface {
	Invoke(ctx context.Context, call scripting.Call) (scripting.Result, error)
}

// ProcessManager handles Resolve process operations
type ProcessManager interface {
	FindProcess(name string) (uint32, bool)
	Launch(path, args string) (uint32, error)
	Terminate(pid uint32) error
}

// WindowFinder locates the Resolve main window for readiness checks
type WindowFinder interface {
	FindMainWindow(pid uint32) (uintptr, string, bool)
}
