// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names double as viper keys and, upper-cased, as env suffixes.
const (
	FlagOutDir      = "out-dir"
	FlagPlaceholder = "legacy-placeholder"
	FlagDryRun      = "dry-run"
	FlagReport      = "report"
	FlagConfig      = "config"
	FlagLogLevel    = "log-level"
	FlagQuiet       = "quiet"

	FlagFormat  = "format"
	FlagMissing = "missing"
)

// Summary output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Options holds the resolved settings of a split run.
type Options struct {
	Input string

	OutDir            string
	LegacyPlaceholder bool
	DryRun            bool
	Report            string // JSON run report path, "-" = stdout

	ConfigFile string
	LogLevel   string
	Quiet      bool
}

// SummaryOptions holds the settings of `chromsplit summary`.
type SummaryOptions struct {
	Dir     string
	Format  string
	Missing bool
}

// RegisterSplitFlags adds the split flags to fs. Values are read back
// through viper so env and config files can fill them too.
func RegisterSplitFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagOutDir, "o", ".", "directory for <chrom>.fa files")
	fs.Bool(FlagPlaceholder, false, "also create the empty 'tmp' file older pipelines expect")
	fs.Bool(FlagDryRun, false, "scan and report without writing files")
	fs.String(FlagReport, "", "write a JSON run report to this path ('-' = stdout)")
	fs.String(FlagConfig, "", "config file (yaml, json or toml)")
	fs.String(FlagLogLevel, "info", "log level: "+strings.Join(logLevels, " | "))
	fs.BoolP(FlagQuiet, "q", false, "only log errors")
}

// RegisterSummaryFlags adds the summary flags to fs and binds them to o.
func RegisterSummaryFlags(fs *pflag.FlagSet, o *SummaryOptions) {
	fs.StringVar(&o.Format, FlagFormat, FormatText, "output format: text | json")
	fs.BoolVar(&o.Missing, FlagMissing, false, "also list canonical chromosomes with no file")
}

// FromViper resolves split options from v and the positional arguments.
func FromViper(v *viper.Viper, args []string) (Options, error) {
	opt := Options{
		OutDir:            v.GetString(FlagOutDir),
		LegacyPlaceholder: v.GetBool(FlagPlaceholder),
		DryRun:            v.GetBool(FlagDryRun),
		Report:            v.GetString(FlagReport),
		ConfigFile:        v.GetString(FlagConfig),
		LogLevel:          strings.ToLower(v.GetString(FlagLogLevel)),
		Quiet:             v.GetBool(FlagQuiet),
	}
	if len(args) != 1 {
		return opt, fmt.Errorf("expected exactly one input FASTA, got %d", len(args))
	}
	opt.Input = args[0]
	return opt, opt.Validate()
}

// Validate checks option values that flag parsing cannot.
func (o Options) Validate() error {
	if o.Input == "" {
		return errors.New("input path is empty")
	}
	if o.OutDir == "" {
		return errors.New("--out-dir must not be empty")
	}
	if o.LogLevel != "" && !contains(logLevels, o.LogLevel) {
		return fmt.Errorf("invalid --log-level %q", o.LogLevel)
	}
	return nil
}

// Validate checks summary option values.
func (o SummaryOptions) Validate() error {
	if o.Format != FormatText && o.Format != FormatJSON {
		return fmt.Errorf("invalid --format %q", o.Format)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
