//go:build windows

package windows

import (
	"fmt"
	"strings"
	"syscall"
	"unsafe"
)

// FindProcessByName snapshots the process list and searches for a process
// whose executable name matches name (case-insensitive). Returns the PID of
// the first match.
func FindProcessByName(name string) (uint32, bool) {
	snapshot, _, _ := procCreateToolhelp32Snapshot.Call(TH32CS_SNAPPROCESS, 0)
	if snapshot == uintptr(syscall.InvalidHandle) {
		return 0, false
	}

	defer func() {
		if ret, _, err := procCloseHandle.Call(snapshot); ret == 0 {
			// Snapshot handle leak - nothing useful to do here
			_ = err
		}
	}()

	var entry PROCESSENTRY32
	entry.DwSize = uint32(unsafe.Sizeof(entry))

	ret, _, _ := procProcess32First.Call(snapshot, uintptr(unsafe.Pointer(&entry)))
	if ret == 0 {
		return 0, false
	}

	for {
		exe := syscall.UTF16ToString(entry.SzExeFile[:])
		if strings.EqualFold(exe, name) {
			return entry.Th32ProcessID, true
		}

		ret, _, _ = procProcess32Next.Call(snapshot, uintptr(unsafe.Pointer(&entry)))
		if ret == 0 {
			break
		}
	}

	return 0, false
}

// TerminateProcess forcefully terminates a process by its PID
func TerminateProcess(pid uint32) error {
	// Open the process with terminate rights
	hProcess, _, err := procOpenProcess.Call(
		uintptr(PROCESS_TERMINATE),
		uintptr(0),
		uintptr(pid),
	)

	if hProcess == 0 {
		return fmt.Errorf("failed to open process: %w", err)
	}

	defer func() {
		if ret, _, err := procCloseHandle.Call(hProcess); ret == 0 {
			// Handle leak - log for diagnostics
			_ = err // CloseHandle failed
		}
	}()

	// Terminate the process
	ret, _, err := procTerminateProcess.Call(hProcess, uintptr(1))
	if ret == 0 {
		return fmt.Errorf("failed to terminate process: %w", err)
	}

	return nil
}
