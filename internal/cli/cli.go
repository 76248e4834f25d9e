package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/slpbuild/internal/app"
	"github.com/vk/slpbuild/internal/build"
)

// DefaultSource is the source document used when no positional argument is
// given.
const DefaultSource = "index.html"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("slpbuild", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
slpbuild - A build-time compiler for declarative HTML applications.

Usage:
  slpbuild [options] [SOURCE]

Arguments:
  SOURCE
    Path to the source markup document. Defaults to index.html.

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.String("output", "", "Path of the generated program artifact. Defaults to the source name with a .js extension.")
	oFlag := flagSet.String("o", "", "Path of the generated program artifact (shorthand).")
	targetFlag := flagSet.String("target", "js", "Output target. Options: 'js' or 'generic'.")
	manifestsFlag := flagSet.String("manifests", "components", "Path to the directory containing component descriptor manifests.")
	exposedNameFlag := flagSet.String("exposed-name", "", "Pin the public entry symbol of the generated program (js target only).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	source := DefaultSource
	if flagSet.NArg() > 0 {
		source = flagSet.Arg(0)
	}

	outputPath := *outputFlag
	if outputPath == "" {
		outputPath = *oFlag
	}
	if outputPath == "" {
		outputPath = derivedOutputPath(source)
	}

	target := build.Target(strings.ToLower(*targetFlag))
	if target != build.TargetJS && target != build.TargetGeneric {
		return nil, false, &ExitError{Code: 2, Message: "invalid target: must be 'js' or 'generic'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		SourcePath:    source,
		OutputPath:    outputPath,
		ManifestsPath: *manifestsFlag,
		Target:        target,
		ExposedName:   *exposedNameFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "source", config.SourcePath, "output", config.OutputPath)
	return config, false, nil
}

// derivedOutputPath swaps the source extension for .js.
func derivedOutputPath(source string) string {
	if i := strings.LastIndexByte(source, '.'); i > 0 && !strings.ContainsAny(source[i:], "/\\") {
		return source[:i] + ".js"
	}
	return source + ".js"
}
