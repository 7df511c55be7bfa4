package commands

import (
	"apptest/internal/cli"
	"apptest/internal/config"
	"apptest/internal/discovery"
	"apptest/internal/execution"
	"apptest/internal/logging"
	"apptest/internal/storage"
	"apptest/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	scanner := discovery.NewScanner()
	runner := execution.NewRunner(cfg)
	executor := execution.NewSequential(runner)
	xmlStorage := storage.NewXMLStorage(cfg)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewFailureViewer(formatter)

	return &Commands{
		Run:      NewRunCommand(cfg, scanner, executor, xmlStorage, formatter),
		List:     NewListCommand(cfg, scanner, formatter),
		Failures: NewFailuresCommand(cfg, xmlStorage, formatter, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Every command loads config layers and the logger after flags are parsed
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := cfg.Reload(flags.ToConfigFlags()); err != nil {
			return err
		}
		return logging.Configure(cfg.LogLevel)
	}
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", config.DefaultEnvFile, "Path to a dotenv file with APPTEST_* variables")
	rootCmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warning, error)")

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run every app test and write a JUnit report",
		Long:  "Discover app test directories, run the driver once per app, print a summary and write a JUnit XML report",
		Args:  cobra.NoArgs,
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().StringVarP(&flags.TestsDir, "tests-dir", "d", "", "Directory holding the apps directory and the driver script (default \"tests\")")
	runCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path of the JUnit report (default \"test-results.xml\")")
	runCmd.Flags().BoolVar(&flags.ExitCode, "exit-code", false, "Exit with status 1 when any app test failed")
	runCmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Do not show the progress bar")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered app tests",
		Long:  "Scan the apps directory and list app tests without running them",
		Args:  cobra.NoArgs,
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.TestsDir, "tests-dir", "d", "", "Directory holding the apps directory and the driver script (default \"tests\")")
	rootCmd.AddCommand(listCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View failures from the last report",
		Long:  "Display the failed app tests recorded in the last JUnit report",
		Args:  cobra.NoArgs,
		RunE:  c.Failures.Execute,
	}
	failuresCmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Path of the JUnit report (default \"test-results.xml\")")
	failuresCmd.Flags().BoolVarP(&flags.Interactive, "interactive", "i", false, "Browse failures in an interactive viewer")
	rootCmd.AddCommand(failuresCmd)
}
