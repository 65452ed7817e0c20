//go:build windows

package windows

import (
	"strings"

	"github.com/Norgate-AV/dvrc/internal/logger"
)

// ProcessAPI is the live Win32 implementation of process management and
// window lookup.
type ProcessAPI struct {
	log logger.LoggerInterface
}

// NewProcessAPI creates a ProcessAPI.
func NewProcessAPI(log logger.LoggerInterface) *ProcessAPI {
	return &ProcessAPI{log: log}
}

// FindProcess searches the process list for an executable name.
func (a *ProcessAPI) FindProcess(name string) (uint32, bool) {
	return FindProcessByName(name)
}

// Launch starts an executable through the Windows shell and returns the PID
// it reports.
func (a *ProcessAPI) Launch(path, args string) (uint32, error) {
	return ShellExecuteEx(0, "open", path, args, "", SW_SHOWNORMAL, a.log)
}

// Terminate forcibly kills the process with the given PID.
func (a *ProcessAPI) Terminate(pid uint32) error {
	return TerminateProcess(pid)
}

// FindMainWindow looks for the main application window of the given process.
// Resolve shows an untitled splash window first; only a visible window whose
// title names the product counts as the main window.
func (a *ProcessAPI) FindMainWindow(pid uint32) (uintptr, string, bool) {
	if pid == 0 {
		return 0, "", false
	}

	for _, w := range EnumerateWindows() {
		if w.Pid != pid {
			continue
		}

		if w.Title == "" {
			continue
		}

		// The enumeration snapshot can be stale; the handle must still be a
		// live, visible window.
		if !IsWindow(w.Hwnd) || !IsWindowVisible(w.Hwnd) {
			continue
		}

		// Skip common dialog windows (#32770), e.g. the crash reporter or a
		// project restore prompt.
		if GetClassName(w.Hwnd) == "#32770" {
			continue
		}

		if strings.Contains(w.Title, "DaVinci Resolve") {
			return w.Hwnd, w.Title, true
		}
	}

	return 0, "", false
}
