package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	md2html "github.com/alnah/go-md2html"
	"github.com/alnah/go-md2html/internal/config"
	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/hints"
)

// ErrUsage indicates the wrong number of positional arguments.
var ErrUsage = errors.New("wrong number of arguments")

// Positional argument layout.
const (
	requiredArgs       = 2
	inputFileArgIndex  = 0
	outputFileArgIndex = 1
)

// runMain parses args, runs the conversion and reports the outcome.
// Returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		fmt.Fprintln(env.Stderr, usageLine)
		return ExitUsage
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "md2html %s\n", Version)
		return ExitSuccess
	}

	setMaxProcs(flags.verbose, env.Stderr)

	if !flags.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	if err := run(positional, flags, env); err != nil {
		if errors.Is(err, ErrUsage) {
			fmt.Fprintln(env.Stderr, usageLine)
		} else {
			fmt.Fprintln(env.Stderr, err)
		}
		return exitCodeFor(err)
	}

	return ExitSuccess
}

// run converts the input file named in positional to the output file.
func run(positional []string, flags *cliFlags, env *Environment) error {
	if len(positional) != requiredArgs {
		return fmt.Errorf("%w: got %d, want %d", ErrUsage, len(positional), requiredArgs)
	}

	inputPath := positional[inputFileArgIndex]
	outputPath := positional[outputFileArgIndex]

	cfg, err := resolveConfig(flags.config, loadEnvConfig())
	if err != nil {
		return err
	}

	conv := md2html.NewConverter(
		md2html.WithMaxInputSize(cfg.Input.MaxSize),
		md2html.WithCreateDirs(cfg.Output.CreateDirs),
		md2html.WithFileMode(cfg.Output.Mode()),
	)

	start := env.Now()
	if err := conv.ConvertFile(inputPath, outputPath); err != nil {
		return fmt.Errorf("%w%s", err, hintFor(err, inputPath))
	}

	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Converted %s in %v\n", inputPath, env.Now().Sub(start))
	}
	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)
	}

	return nil
}

// resolveConfig loads the config file named by the flag or the environment,
// then applies environment overrides.
func resolveConfig(flagConfig string, env *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			hint := ""
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				hint = hints.ForConfigNotFound(config.SearchPaths(name))
			}
			return nil, fmt.Errorf("loading config: %w%s", err, hint)
		}
	}

	applyEnvConfig(env, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// hintFor returns an actionable hint for a conversion error, or "".
func hintFor(err error, inputPath string) string {
	switch {
	case errors.Is(err, md2html.ErrMissingInput):
		return hints.ForMissingInput(inputPath)
	case errors.Is(err, md2html.ErrInputTooLarge):
		return hints.ForInputTooLarge()
	case errors.Is(err, md2html.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
