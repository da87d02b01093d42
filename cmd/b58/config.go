package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// envPrefix is prepended to a flag name to form its environment variable,
// e.g. --log-level is read from B58_LOG_LEVEL.
const envPrefix = "B58_"

// Config holds the settings shared by every sub-command.
type Config struct {
	Hash     string // double hash provider for check-encode/check-decode
	LogLevel string // logrus level name
	NoColor  bool   // disable ANSI colors
	Hex      bool   // binary input/output as hex
}

// addFlags registers the shared flags on fs.
func (c *Config) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Hash, "hash", "sha256d", "double hash used for checksums")
	fs.StringVar(&c.LogLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	fs.BoolVar(&c.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&c.Hex, "hex", false, "read and write binary data as hex")
}

// envName returns the environment variable consulted for a flag.
func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

// bindEnv fills every flag of fs that was not set on the command line from its
// environment variable, if present.
func bindEnv(fs *pflag.FlagSet, lookup func(string) (string, bool)) error {
	var err error
	fs.VisitAll(func(f *pflag.Flag) {
		if err != nil || f.Changed {
			return
		}
		v, ok := lookup(envName(f.Name))
		if !ok {
			return
		}
		if setErr := fs.Set(f.Name, v); setErr != nil {
			err = fmt.Errorf("%s: %w", envName(f.Name), setErr)
		}
	})
	return err
}

// newLogger builds the command logger from the configured level.
func (c *Config) newLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    c.NoColor,
		DisableTimestamp: true,
	})
	return log, nil
}
