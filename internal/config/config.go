package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Layout of the tests directory
	TestsDir string
	AppsDir  string
	Driver   string

	// Output settings
	OutputFile string

	LogLevel string

	// Command flags
	Flags Flags
}

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

// fileConfig mirrors the keys accepted in the YAML config file.
type fileConfig struct {
	TestsDir   string `yaml:"tests_dir"`
	AppsDir    string `yaml:"apps_dir"`
	Driver     string `yaml:"driver"`
	OutputFile string `yaml:"output"`
	LogLevel   string `yaml:"log_level"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		TestsDir:   DefaultTestsDir,
		AppsDir:    DefaultAppsDir,
		Driver:     DefaultDriver,
		OutputFile: DefaultOutputFile,
		LogLevel:   DefaultLogLevel,
	}
}

// Load creates a config from defaults, the optional YAML file, the optional
// dotenv file and the environment, then applies flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if err := cfg.Reload(flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Reload resets c to defaults and re-applies every layer. Commands share one
// *Config, so flags parsed after construction are applied in place.
func (c *Config) Reload(flags Flags) error {
	*c = *New()

	if flags.ConfigFile != "" {
		if err := c.LoadFile(flags.ConfigFile); err != nil {
			return err
		}
	}

	envFile := flags.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := c.LoadEnv(envFile); err != nil {
		return err
	}

	c.ApplyFlags(flags)
	return nil
}

// LoadFile merges non-empty values from a YAML config file.
// A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.merge(fc.TestsDir, fc.AppsDir, fc.Driver, fc.OutputFile, fc.LogLevel)
	return nil
}

// LoadEnv merges values from a dotenv file and the process environment.
// Process environment wins over the file. A missing file is not an error.
func (c *Config) LoadEnv(envFile string) error {
	vars := map[string]string{}
	if _, err := os.Stat(envFile); err == nil {
		vars, err = godotenv.Read(envFile)
		if err != nil {
			return fmt.Errorf("failed to parse env file %s: %w", envFile, err)
		}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return vars[key]
	}

	c.merge(lookup(EnvTestsDir), lookup(EnvAppsDir), lookup(EnvDriver), lookup(EnvOutputFile), lookup(EnvLogLevel))
	return nil
}

// ApplyFlags stores flags and applies the ones that override config values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	c.merge(flags.TestsDir, "", "", flags.Output, flags.LogLevel)
}

func (c *Config) merge(testsDir, appsDir, driver, output, logLevel string) {
	if testsDir != "" {
		c.TestsDir = testsDir
	}
	if appsDir != "" {
		c.AppsDir = appsDir
	}
	if driver != "" {
		c.Driver = driver
	}
	if output != "" {
		c.OutputFile = output
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// GetAppsPath returns the directory whose subdirectories are the app tests
func (c *Config) GetAppsPath() string {
	if filepath.IsAbs(c.AppsDir) {
		return c.AppsDir
	}
	return filepath.Join(c.TestsDir, c.AppsDir)
}

// GetDriverPath returns the absolute path of the driver script.
// exec.Cmd resolves a relative Path against Cmd.Dir, so the path must not stay
// relative once the driver runs inside the tests directory.
func (c *Config) GetDriverPath() string {
	p := c.Driver
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.TestsDir, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetOutputPath returns the full path to the report file, resolved against
// the invoking working directory.
func (c *Config) GetOutputPath() string {
	if abs, err := filepath.Abs(c.OutputFile); err == nil {
		return abs
	}
	return c.OutputFile
}
