package config

const (
	// DefaultTestsDir is the directory holding the apps directory and the driver
	DefaultTestsDir = "tests"
	// DefaultAppsDir is the apps directory, relative to the tests directory
	DefaultAppsDir = "apps"
	// DefaultDriver is the driver script, relative to the tests directory
	DefaultDriver = "test-app-discovery.sh"
	// DefaultOutputFile is the report file, relative to the invoking working directory
	DefaultOutputFile = "test-results.xml"
	// DefaultLogLevel is the default logrus level
	DefaultLogLevel = "warning"
	// DefaultEnvFile is the dotenv file read when present
	DefaultEnvFile = ".env"
)

// Report constants. These are part of the report format consumed by CI and are
// not configurable.
const (
	SuiteName      = "network-scanner-cmd-tests"
	CaseClassName  = "test-app-discovery.sh"
	FailureMessage = "Test failed"
)

// Environment variables consulted after the config file.
const (
	EnvTestsDir   = "APPTEST_TESTS_DIR"
	EnvAppsDir    = "APPTEST_APPS_DIR"
	EnvDriver     = "APPTEST_DRIVER"
	EnvOutputFile = "APPTEST_OUTPUT"
	EnvLogLevel   = "APPTEST_LOG_LEVEL"
)
