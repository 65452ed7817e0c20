package resolve

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultResolvePath is the stock installation path of the Resolve executable.
	DefaultResolvePath = "C:\\Program Files\\Blackmagic Design\\DaVinci Resolve\\Resolve.exe"

	// ProcessName is the executable name Resolve registers in the process list.
	ProcessName = "Resolve.exe"

	// fuscriptName is the script host executable shipped in the Resolve
	// installation directory.
	fuscriptName = "fuscript.exe"
)

// GetResolvePath returns the path to the Resolve executable.
// It checks the RESOLVE_PATH environment variable first,
// falling back to the default installation path if not set.
func GetResolvePath() string {
	if envPath := os.Getenv("RESOLVE_PATH"); envPath != "" {
		return envPath
	}

	return DefaultResolvePath
}

// GetFuscriptPath returns the path to the fuscript script host, which lives
// alongside the Resolve executable.
func GetFuscriptPath() string {
	return filepath.Join(filepath.Dir(GetResolvePath()), fuscriptName)
}

// ValidateInstallation checks if the Resolve executable exists.
// Returns an error with helpful guidance if the file is not found.
func ValidateInstallation() error {
	path := GetResolvePath()

	var err error
	if _, err = os.Stat(path); os.IsNotExist(err) {
		if os.Getenv("RESOLVE_PATH") != "" {
			return fmt.Errorf("DaVinci Resolve not found at custom path: %s\n"+
				"Please verify the RESOLVE_PATH environment variable is correct", path)
		}

		return fmt.Errorf("DaVinci Resolve not found at default path: %s\n"+
			"Please install DaVinci Resolve or set RESOLVE_PATH environment variable", path)
	}

	if err != nil {
		return fmt.Errorf("error checking Resolve installation at %s: %w", path, err)
	}

	return nil
}
