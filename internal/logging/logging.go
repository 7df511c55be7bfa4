package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Configure sets up the standard logrus logger: text output to stderr with
// full timestamps and caller locations.
func Configure(level string) error {
	return ConfigureOutput(level, os.Stderr)
}

// ConfigureOutput is Configure with an explicit writer
func ConfigureOutput(level string, out io.Writer) error {
	forceColors := false
	if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) && os.Getenv("NO_COLOR") == "" {
		forceColors = true
	}

	logrus.SetOutput(out)
	logrus.SetReportCaller(true)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     forceColors,
		DisableQuote:    true,
		TimestampFormat: "2006-01-02 15:04:05",
		CallerPrettyfier: func(frame *runtime.Frame) (string, string) {
			return "", fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		},
	})
	return ApplyLogLevel(level)
}

// ApplyLogLevel sets the global logging level. An empty level leaves it unchanged.
func ApplyLogLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	return nil
}
