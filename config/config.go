// Package config holds the settings the commands run with. Everything that
// used to be decided from global environment probes is an explicit field
// here and is passed down from the command that loaded it.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// OutDir receives rendered files when no explicit output is given.
	OutDir         string        `yaml:"out_dir"`
	Addr           string        `yaml:"addr"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Strict         bool          `yaml:"strict"`
	BestEffort     bool          `yaml:"best_effort"`
	WatchInterval  time.Duration `yaml:"watch_interval"`
	LogLevel       string        `yaml:"log_level"`
}

func Default() Config {
	return Config{
		OutDir:         "./out",
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
		WatchInterval:  500 * time.Millisecond,
		LogLevel:       "info",
	}
}

// Load starts from Default, applies the YAML file at path if path is not
// empty, then the SRIDAW_* environment variables.
func Load(path string) (Config, error) {
	conf := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return conf, errors.Wrap(err, "could not read config")
		}
		if err := yaml.UnmarshalStrict(data, &conf); err != nil {
			return conf, errors.Wrapf(err, "could not parse config %v", path)
		}
	}
	if err := conf.applyEnv(); err != nil {
		return conf, err
	}
	return conf, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("SRIDAW_OUT_DIR"); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv("SRIDAW_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("SRIDAW_STRICT"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "SRIDAW_STRICT")
		}
		c.Strict = strict
	}
	return nil
}

// EnsureOutDir creates OutDir if needed.
func (c Config) EnsureOutDir() error {
	return errors.Wrap(os.MkdirAll(c.OutDir, 0777), "could not create out dir")
}
