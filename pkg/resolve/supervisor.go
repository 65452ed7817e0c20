package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Norgate-AV/dvrc/internal/interfaces"
	"github.com/Norgate-AV/dvrc/internal/logger"
	"github.com/Norgate-AV/dvrc/internal/timeouts"
	"github.com/Norgate-AV/dvrc/internal/windows"
)

// Lifecycle status messages surfaced to the user.
const (
	MsgOpened         = "DaVinci Resolve opened successfully."
	MsgAlreadyRunning = "DaVinci Resolve is already running."
)

// OpenOptions controls how the supervisor launches Resolve. Zero-value
// timeouts fall back to the package defaults.
type OpenOptions struct {
	// ExecutablePath overrides the configured Resolve path.
	ExecutablePath string

	// NoGUI launches Resolve headless with the -nogui switch.
	NoGUI bool

	// WaitForWindow blocks until the main application window appears,
	// skipping the splash screen. Ignored when NoGUI is set.
	WaitForWindow bool

	// WaitForScripting blocks until the scripting service answers a ping.
	WaitForScripting bool

	ProcessTimeout   time.Duration
	WindowTimeout    time.Duration
	ScriptingTimeout time.Duration
}

// Supervisor manages the Resolve process: detecting, launching with
// readiness polling, and force termination.
type Supervisor struct {
	log    logger.LoggerInterface
	proc   interfaces.ProcessManager
	win    interfaces.WindowFinder
	bridge interfaces.Bridge
	sleep  func(time.Duration)
}

// NewSupervisor creates a supervisor backed by the live Win32 and scripting
// layers.
func NewSupervisor(log logger.LoggerInterface, bridge interfaces.Bridge) *Supervisor {
	api := windows.NewProcessAPI(log)
	return NewSupervisorWithDeps(log, api, api, bridge)
}

// NewSupervisorWithDeps creates a supervisor with caller-supplied
// dependencies, used by tests.
func NewSupervisorWithDeps(log logger.LoggerInterface, proc interfaces.ProcessManager, win interfaces.WindowFinder, bridge interfaces.Bridge) *Supervisor {
	return &Supervisor{
		log:    log,
		proc:   proc,
		win:    win,
		bridge: bridge,
		sleep:  time.Sleep,
	}
}

// IsRunning reports whether a Resolve process exists, and its PID when it
// does.
func (s *Supervisor) IsRunning() (uint32, bool) {
	return s.proc.FindProcess(ProcessName)
}

// Open launches Resolve and waits for it to come up. It returns a status
// message describing the outcome.
func (s *Supervisor) Open(ctx context.Context, opts OpenOptions) (string, error) {
	if pid, running := s.IsRunning(); running {
		s.log.Debug("Process already running", slog.Uint64("pid", uint64(pid)))
		return MsgAlreadyRunning, nil
	}

	path := opts.ExecutablePath
	if path == "" {
		path = GetResolvePath()
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("Resolve executable not found at '%s'. Please check the path and try again", path)
	}

	args := ""
	if opts.NoGUI {
		args = "-nogui"
	}

	s.log.Info("Launching DaVinci Resolve", slog.String("path", path))

	launchPid, err := s.proc.Launch(path, args)
	if err != nil {
		return "", fmt.Errorf("failed to launch Resolve: %w", err)
	}

	pid, err := s.waitForProcess(ctx, launchPid, processTimeout(opts))
	if err != nil {
		return "", err
	}

	if opts.WaitForWindow && !opts.NoGUI {
		if err := s.waitForWindow(ctx, pid, windowTimeout(opts)); err != nil {
			return "", err
		}
	}

	if opts.WaitForScripting {
		if err := s.waitForScripting(ctx, scriptingTimeout(opts)); err != nil {
			return "", err
		}
	}

	return MsgOpened, nil
}

// Kill finds the Resolve process and forcibly terminates it, waiting for the
// process to disappear.
func (s *Supervisor) Kill(ctx context.Context) error {
	pid, running := s.IsRunning()
	if !running {
		return ErrNotRunning
	}

	s.log.Info("Terminating DaVinci Resolve", slog.Uint64("pid", uint64(pid)))

	if err := s.proc.Terminate(pid); err != nil {
		return fmt.Errorf("failed to terminate process %d: %w", pid, err)
	}

	deadline := time.Now().Add(timeouts.ShutdownTimeout)

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, running := s.IsRunning(); !running {
			s.log.Debug("Process terminated")
			return nil
		}

		s.sleep(timeouts.StatePollingInterval)
	}

	return fmt.Errorf("process %d did not exit within %s", pid, timeouts.ShutdownTimeout)
}

// waitForProcess polls the process list until the Resolve process appears.
// ShellExecuteEx may hand back the PID of a short-lived launcher, so the
// snapshot search is authoritative.
func (s *Supervisor) waitForProcess(ctx context.Context, launchPid uint32, timeout time.Duration) (uint32, error) {
	deadline := time.Now().Add(timeout)

	s.log.Debug("Waiting for process to appear",
		slog.Uint64("launchPid", uint64(launchPid)),
		slog.String("timeout", timeout.String()),
	)

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		if pid, running := s.IsRunning(); running {
			s.log.Debug("Process appeared", slog.Uint64("pid", uint64(pid)))
			return pid, nil
		}

		s.sleep(timeouts.ProcessPollingInterval)
	}

	return 0, fmt.Errorf("Resolve process did not appear within %s", timeout)
}

// waitForWindow polls until the main application window exists for the given
// process. The splash screen does not count.
func (s *Supervisor) waitForWindow(ctx context.Context, pid uint32, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	s.log.Debug("Waiting for main window", slog.Uint64("pid", uint64(pid)))

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if hwnd, title, found := s.win.FindMainWindow(pid); found {
			s.log.Debug("Main window found",
				slog.String("title", title),
				slog.Uint64("hwnd", uint64(hwnd)),
			)
			return nil
		}

		s.sleep(timeouts.StatePollingInterval)
	}

	return fmt.Errorf("Resolve main window did not appear within %s", timeout)
}

// waitForScripting polls the scripting service until it answers. The service
// comes up well after the process and window do.
func (s *Supervisor) waitForScripting(ctx context.Context, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)

	s.log.Debug("Waiting for scripting service")

	client := NewClientWithBridge(s.bridge, s.log)

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}

		pingCtx, cancel := context.WithTimeout(ctx, timeouts.ScriptPingTimeout)
		err := client.Ping(pingCtx)
		cancel()

		if err == nil {
			s.log.Debug("Scripting service is up")
			return nil
		}

		s.log.Trace("Scripting service not ready", slog.Any("error", err))
		s.sleep(timeouts.StatePollingInterval)
	}

	return fmt.Errorf("scripting service did not answer within %s", timeout)
}

func processTimeout(opts OpenOptions) time.Duration {
	if opts.ProcessTimeout > 0 {
		return opts.ProcessTimeout
	}

	return timeouts.ProcessAppearTimeout
}

func windowTimeout(opts OpenOptions) time.Duration {
	if opts.WindowTimeout > 0 {
		return opts.WindowTimeout
	}

	return timeouts.WindowAppearTimeout
}

func scriptingTimeout(opts OpenOptions) time.Duration {
	if opts.ScriptingTimeout > 0 {
		return opts.ScriptingTimeout
	}

	return timeouts.ScriptReadyTimeout
}
