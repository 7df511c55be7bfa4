package cli

import "apptest/internal/config"

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	EnvFile     string
	LogLevel    string
	TestsDir    string
	Output      string
	ExitCode    bool
	NoProgress  bool
	Interactive bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:  f.ConfigFile,
		EnvFile:     f.EnvFile,
		LogLevel:    f.LogLevel,
		TestsDir:    f.TestsDir,
		Output:      f.Output,
		ExitCode:    f.ExitCode,
		NoProgress:  f.NoProgress,
		Interactive: f.Interactive,
	}
}
