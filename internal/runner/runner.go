package runner

import (
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

// Options holds the parsed dafsagen CLI flags.
type Options struct {
	Input              string
	Reverse            bool
	Output             string
	Format             string
	Config             string
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
}

// ParseFlags parses the dafsagen command line, applying any merged config
// file and the verbosity/update-check side effects in the same place.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compiles a dictionary of (word, return code) pairs into a compact DAFSA byte array.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Input, "input", "i", "", "gperf-style dictionary file to compile (default stdin)"),
		flagSet.BoolVarP(&opts.Reverse, "reverse", "r", false, "reverse each entry's name character-wise before compiling"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write the compiled dictionary to (default stdout)"),
		flagSet.StringVarP(&opts.Format, "format", "f", "bin", "output format (bin, go)"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display dafsagen version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `dafsagen cli config file (default '$HOME/.config/dafsagen/config.yaml')`),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update dafsagen to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic dafsagen update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("dafsagen")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("dafsagen version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current dafsagen version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.Input == "" && fileutil.HasStdin() {
		opts.Input = "-"
	}
	if opts.Input == "" {
		gologger.Fatal().Msgf("dafsagen: no input found, pass -input or pipe a dictionary on stdin")
	}

	opts.Format = strings.ToLower(opts.Format)
	if err := validateFormat(opts.Format); err != nil {
		gologger.Fatal().Msgf("dafsagen: %s", err)
	}

	return opts
}

func validateFormat(format string) error {
	switch format {
	case "bin", "go":
		return nil
	default:
		return errorutil.NewWithTag("dafsagen", "unsupported output format '"+format+"', expected bin or go")
	}
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
