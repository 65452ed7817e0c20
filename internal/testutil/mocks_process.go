package testutil

// MockProcessManager implements interfaces.ProcessManager for testing
type MockProcessManager struct {
	pid            uint32
	running        bool
	appearAfter    int // FindProcess calls before the process "appears"
	vanishAfter    int // FindProcess calls before the process "vanishes"
	LaunchPid      uint32
	LaunchErr      error
	TerminateErr   error
	FindCalls      int
	LaunchCalls    []LaunchCall
	TerminatedPids []uint32
}

type LaunchCall struct {
	Path string
	Args string
}

func NewMockProcessManager() *MockProcessManager {
	return &MockProcessManager{
		LaunchPid:   1234,
		vanishAfter: -1,
		appearAfter: -1,
	}
}

// WithRunning makes FindProcess report a running process with the given PID.
func (m *MockProcessManager) WithRunning(pid uint32) *MockProcessManager {
	m.pid = pid
	m.running = true
	return m
}

// WithAppearAfter makes FindProcess report not-running for the first n calls,
// then running with the given PID.
func (m *MockProcessManager) WithAppearAfter(n int, pid uint32) *MockProcessManager {
	m.pid = pid
	m.appearAfter = n
	return m
}

// WithVanishAfter makes FindProcess report running for the first n calls,
// then not-running. Used to simulate termination.
func (m *MockProcessManager) WithVanishAfter(n int, pid uint32) *MockProcessManager {
	m.pid = pid
	m.running = true
	m.vanishAfter = n
	return m
}

func (m *MockProcessManager) WithLaunchError(err error) *MockProcessManager {
	m.LaunchErr = err
	return m
}

func (m *MockProcessManager) WithTerminateError(err error) *MockProcessManager {
	m.TerminateErr = err
	return m
}

func (m *MockProcessManager) FindProcess(name string) (uint32, bool) {
	m.FindCalls++

	if m.appearAfter >= 0 && m.FindCalls > m.appearAfter {
		return m.pid, true
	}

	if m.vanishAfter >= 0 && m.FindCalls > m.vanishAfter {
		return 0, false
	}

	if m.running {
		return m.pid, true
	}

	return 0, false
}

func (m *MockProcessManager) Launch(path, args string) (uint32, error) {
	m.LaunchCalls = append(m.LaunchCalls, LaunchCall{Path: path, Args: args})

	if m.LaunchErr != nil {
		return 0, m.LaunchErr
	}

	return m.LaunchPid, nil
}

func (m *MockProcessManager) Terminate(pid uint32) error {
	m.TerminatedPids = append(m.TerminatedPids, pid)
	return m.TerminateErr
}

// MockWindowFinder implements interfaces.WindowFinder for testing
type MockWindowFinder struct {
	Hwnd  uintptr
	Title string
	Found bool
	Calls []uint32
}

func NewMockWindowFinder() *MockWindowFinder {
	return &MockWindowFinder{}
}

func (m *MockWindowFinder) WithWindow(hwnd uintptr, title string) *MockWindowFinder {
	m.Hwnd = hwnd
	m.Title = title
	m.Found = true
	return m
}

func (m *MockWindowFinder) FindMainWindow(pid uint32) (uintptr, string, bool) {
	m.Calls = append(m.Calls, pid)
	return m.Hwnd, m.Title, m.Found
}
