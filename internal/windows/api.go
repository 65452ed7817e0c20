//go:build windows

package windows

import (
	"syscall"
)

var (
	shell32                      = syscall.NewLazyDLL("shell32.dll")
	procShellExecuteEx           = shell32.NewProc("ShellExecuteExW")
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procCreateToolhelp32Snapshot = kernel32.NewProc("CreateToolhelp32Snapshot")
	procProcess32First           = kernel32.NewProc("Process32FirstW")
	procProcess32Next            = kernel32.NewProc("Process32NextW")
	procCloseHandle              = kernel32.NewProc("CloseHandle")
	procGetProcessId             = kernel32.NewProc("GetProcessId")
	procOpenProcess              = kernel32.NewProc("OpenProcess")
	procTerminateProcess         = kernel32.NewProc("TerminateProcess")
	user32                       = syscall.NewLazyDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetClassNameW            = user32.NewProc("GetClassNameW")
	procIsWindow                 = user32.NewProc("IsWindow")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
)

const (
	TH32CS_SNAPPROCESS = 0x00000002
	MAX_PATH           = 260

	SW_SHOWNORMAL = 1

	PROCESS_TERMINATE = 0x0001

	SEE_MASK_NOCLOSEPROCESS = 0x00000040
)
