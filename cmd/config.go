// Package cmd implements the command-line interface for dvrc.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Verbose        bool
	ShowLogs       bool
	ExecutablePath string
	NoGUI          bool
	NoWait         bool
}

// NewConfigFromFlags creates a Config from parsed command flags, merged over
// the config file and defaults. Precedence: flags > environment > file >
// defaults.
func NewConfigFromFlags(cmd *cobra.Command) *Config {
	v := newViper()

	bindFlag(v, cmd, "verbose")
	bindFlag(v, cmd, "logs")
	bindFlag(v, cmd, "path")
	bindFlag(v, cmd, "nogui")
	bindFlag(v, cmd, "no-wait")

	return &Config{
		Verbose:        v.GetBool("verbose"),
		ShowLogs:       v.GetBool("logs"),
		ExecutablePath: v.GetString("path"),
		NoGUI:          v.GetBool("nogui"),
		NoWait:         v.GetBool("no-wait"),
	}
}

// newViper builds a viper instance that reads the optional dvrc.yml from the
// working directory or the app data directory. A missing file is not an
// error.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("dvrc")
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		v.AddConfigPath(filepath.Join(localAppData, "dvrc"))
	}

	v.SetEnvPrefix("DVRC")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return v
}

// bindFlag overlays a flag onto the viper key of the same name when the flag
// was set on the command line.
func bindFlag(v *viper.Viper, cmd *cobra.Command, name string) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}

	if flag == nil {
		return
	}

	_ = v.BindPFlag(name, flag)
}
