// Package config loads the strenum command-line configuration.
//
// Flags are declared on a standard library flag set so that go:generate
// lines can use the single-dash form (-type=Method). The parsed set is
// bridged to pflag and bound to viper, which layers a .strenum.yaml file
// and STRENUM_* environment variables under explicitly set flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by strenum.
const EnvPrefix = "STRENUM"

// ErrUsage marks invalid flag combinations.
var ErrUsage = errors.New("usage error")

// Config is the resolved configuration of one strenum invocation.
type Config struct {
	// Types are the enum type names to load from Go source.
	Types []string `mapstructure:"type"`
	// Manifest is the path of a YAML manifest.
	Manifest string `mapstructure:"manifest"`
	// Output overrides the generated file path.
	Output string `mapstructure:"output"`
	// Tags are build tags used when loading packages.
	Tags []string `mapstructure:"tags"`
	// Text enables MarshalText/UnmarshalText.
	Text bool `mapstructure:"text"`
	// Strict turns warnings into errors.
	Strict bool `mapstructure:"strict"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"v"`
	// ConfigFile is an explicit configuration file.
	ConfigFile string `mapstructure:"config"`
	// Patterns are the package patterns given as arguments.
	Patterns []string `mapstructure:"-"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Text: true,
	}
}

// NewFlagSet declares the strenum flags.
func NewFlagSet(name string, output io.Writer) *flag.FlagSet {
	def := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.String("type", "", "comma-separated list of enum type names")
	fs.String("manifest", "", "YAML manifest declaring the enums")
	fs.String("output", "", "output file name; default <type>_strenum.go or the manifest's output")
	fs.String("tags", "", "comma-separated list of build tags")
	fs.Bool("text", def.Text, "generate MarshalText and UnmarshalText")
	fs.Bool("strict", def.Strict, "treat warnings as errors")
	fs.Bool("v", def.Verbose, "verbose logging")
	fs.String("config", "", "configuration file (default .strenum.yaml if present)")

	return fs
}

// Load parses args and resolves the configuration. Explicit flags win
// over environment variables, which win over the configuration file.
func Load(fs *flag.FlagSet, args []string) (Config, error) {
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	pfs := bridge(fs)

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(pfs); err != nil {
		return Config{}, fmt.Errorf("binding flags: %w", err)
	}

	if err := readConfigFile(v); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg.Types = splitList(cfg.Types)
	cfg.Tags = splitList(cfg.Tags)
	cfg.Patterns = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks flag combinations.
func (c *Config) Validate() error {
	switch {
	case len(c.Types) == 0 && c.Manifest == "":
		return fmt.Errorf("%w: one of -type or -manifest is required", ErrUsage)
	case len(c.Types) > 0 && c.Manifest != "":
		return fmt.Errorf("%w: -type and -manifest are mutually exclusive", ErrUsage)
	case c.Manifest != "" && len(c.Patterns) > 0:
		return fmt.Errorf("%w: package patterns cannot be combined with -manifest", ErrUsage)
	case len(c.Patterns) > 1:
		return fmt.Errorf("%w: at most one package pattern is allowed", ErrUsage)
	}

	return nil
}

// bridge mirrors a parsed standard flag set into pflag, marking the flags
// the user set so viper gives them precedence.
func bridge(fs *flag.FlagSet) *pflag.FlagSet {
	pfs := pflag.NewFlagSet(fs.Name(), pflag.ContinueOnError)
	pfs.AddGoFlagSet(fs)

	fs.Visit(func(f *flag.Flag) {
		if pf := pfs.Lookup(f.Name); pf != nil {
			pf.Changed = true
		}
	})

	return pfs
}

func readConfigFile(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}

		return nil
	}

	v.SetConfigName(".strenum")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("reading config: %w", err)
	}

	return nil
}

// splitList splits comma-separated entries and drops empty ones.
func splitList(in []string) []string {
	var out []string

	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}
