package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	viper.Viper
}

const (
	ConfigGames      = "games"
	ConfigThreads    = "threads"
	ConfigLogLevel   = "log-level"
	ConfigSeedReport = "seed-report"
	ConfigOutput     = "output"
	ConfigConfidence = "confidence"
	ConfigHistogram  = "histogram"
)

func (c *Config) setDefaults() {
	c.SetDefault(ConfigGames, 1000)
	c.SetDefault(ConfigThreads, 4)
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigSeedReport, false)
	c.SetDefault(ConfigOutput, "")
	c.SetDefault(ConfigConfidence, 95.0)
	c.SetDefault(ConfigHistogram, false)
}

// Load reads configuration from, in increasing priority: defaults, an
// optional connect4.yaml in the working directory, CONNECT4_* environment
// variables and command-line flags.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	c.setDefaults()

	fs := pflag.NewFlagSet("connect4", pflag.ContinueOnError)
	fs.Int(ConfigGames, 1000, "number of random games to play")
	fs.Int(ConfigThreads, 4, "number of games played in parallel")
	fs.String(ConfigLogLevel, "info", "log level (debug, info, warn, error)")
	fs.Bool(ConfigSeedReport, false, "count distinct final positions by zobrist hash")
	fs.String(ConfigOutput, "", "file to write the YAML report to; stdout if empty")
	fs.Float64(ConfigConfidence, 95.0, "confidence level (percent) for reported intervals")
	fs.Bool(ConfigHistogram, false, "print a histogram of game lengths to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}

	c.SetEnvPrefix("connect4")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("connect4")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return c.Validate()
}

// Validate checks values that would otherwise fail far from the config.
func (c *Config) Validate() error {
	if c.GetInt(ConfigGames) < 0 {
		return errors.New("games must not be negative")
	}
	if c.GetInt(ConfigThreads) < 1 {
		return errors.New("threads must be at least 1")
	}
	conf := c.GetFloat64(ConfigConfidence)
	if conf <= 0 || conf >= 100 {
		return errors.New("confidence must be between 0 and 100")
	}
	if _, err := zerolog.ParseLevel(c.GetString(ConfigLogLevel)); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the configured zerolog level, info if unparseable.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.GetString(ConfigLogLevel))
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

func DefaultConfig() Config {
	c := Config{}
	c.Viper = *viper.New()
	c.setDefaults()
	return c
}
