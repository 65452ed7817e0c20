//go:build windows

package windows

import (
	"fmt"
	"log/slog"
	"sync"
	"syscall"
	"unsafe"

	"github.com/Norgate-AV/dvrc/internal/logger"
)

// ShellExecuteEx executes a file using the Windows shell and returns the
// process ID. Preferred over ShellExecute when the launched process needs to
// be tracked afterwards.
func ShellExecuteEx(hwnd uintptr, verb, file, args, cwd string, showCmd int, log logger.LoggerInterface) (uint32, error) {
	var verbPtr, filePtr, argsPtr, cwdPtr *uint16
	var err error

	if verb != "" {
		verbPtr, err = syscall.UTF16PtrFromString(verb)
		if err != nil {
			return 0, err
		}
	}

	filePtr, err = syscall.UTF16PtrFromString(file)
	if err != nil {
		return 0, err
	}

	if args != "" {
		argsPtr, err = syscall.UTF16PtrFromString(args)
		if err != nil {
			return 0, err
		}
	}

	if cwd != "" {
		cwdPtr, err = syscall.UTF16PtrFromString(cwd)
		if err != nil {
			return 0, err
		}
	}

	sei := SHELLEXECUTEINFO{
		CbSize:       uint32(unsafe.Sizeof(SHELLEXECUTEINFO{})),
		FMask:        SEE_MASK_NOCLOSEPROCESS,
		Hwnd:         hwnd,
		LpVerb:       verbPtr,
		LpFile:       filePtr,
		LpParameters: argsPtr,
		LpDirectory:  cwdPtr,
		NShow:        int32(showCmd),
	}

	ret, _, _ := procShellExecuteEx.Call(uintptr(unsafe.Pointer(&sei)))
	if ret == 0 {
		return 0, fmt.Errorf("shell execute ex failed")
	}

	// Get process ID from the process handle
	if sei.HProcess == 0 {
		return 0, fmt.Errorf("shell execute ex did not return a process handle")
	}

	pid, _, _ := procGetProcessId.Call(sei.HProcess)
	if pid == 0 {
		// Clean up the process handle before returning error
		if ret, _, err := procCloseHandle.Call(sei.HProcess); ret == 0 {
			log.Debug("Failed to close process handle in error path", slog.Any("error", err))
		}

		return 0, fmt.Errorf("failed to get process ID from handle")
	}

	// Close the process handle - we only need the PID
	if ret, _, err := procCloseHandle.Call(sei.HProcess); ret == 0 {
		log.Debug("Failed to close process handle after getting PID", slog.Any("error", err))
	}

	return uint32(pid), nil
}

// GetWindowText retrieves the text of a window
func GetWindowText(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return syscall.UTF16ToString(buf)
}

// GetClassName retrieves the class name of a window
func GetClassName(hwnd uintptr) string {
	buf := make([]uint16, 256)

	ret, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return syscall.UTF16ToString(buf)
}

// IsWindow checks if a window handle is valid
func IsWindow(hwnd uintptr) bool {
	ret, _, _ := procIsWindow.Call(hwnd)
	return ret != 0
}

// IsWindowVisible checks if a window is visible
func IsWindowVisible(hwnd uintptr) bool {
	ret, _, _ := procIsWindowVisible.Call(hwnd)
	return ret != 0
}

// GetWindowPid retrieves the process ID of a window
func GetWindowPid(hwnd uintptr) uint32 {
	var pid uint32

	ret, _, _ := procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if ret == 0 {
		return 0
	}

	return pid
}

var (
	foundWindows []WindowInfo
	windowsMu    sync.Mutex
)

func enumWindowsCallback(hwnd uintptr, lparam uintptr) uintptr {
	if IsWindowVisible(hwnd) {
		title := GetWindowText(hwnd)
		pid := GetWindowPid(hwnd)

		// Include even if title is empty; callers may match by class instead
		foundWindows = append(foundWindows, WindowInfo{Hwnd: hwnd, Title: title, Pid: pid})
	}

	return 1 // Continue enumeration
}

// EnumerateWindows performs a thread-safe enumeration of visible top-level windows
func EnumerateWindows() []WindowInfo {
	windowsMu.Lock()
	defer windowsMu.Unlock()

	foundWindows = nil
	callback := syscall.NewCallback(enumWindowsCallback)
	ret, _, _ := procEnumWindows.Call(callback, 0)
	if ret == 0 {
		return nil
	}

	// Make a copy to avoid races with subsequent enumerations
	windows := make([]WindowInfo, len(foundWindows))
	copy(windows, foundWindows)

	return windows
}
