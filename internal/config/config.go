package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"luamin/internal/minifier"
)

// FileName is the optional project file read from the working directory
const FileName = "luamin.yaml"

// Config holds the settings for a luamin run
type Config struct {
	// Mode is the comment policy: literal or faithful
	Mode string

	// Include and Exclude are glob patterns used by batch builds
	Include []string
	Exclude []string

	// Quiet suppresses per-file output
	Quiet bool
}

// Load reads luamin.yaml from dir if present, then LUAMIN_* environment
// variables, then any of flags that were set on the command line.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("mode", minifier.LiteralAware.String())
	v.SetDefault("include", "**/*.lua")
	v.SetDefault("exclude", "")
	v.SetDefault("quiet", false)

	v.SetEnvPrefix("LUAMIN")
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{"mode", "include", "exclude", "quiet"} {
			if flag := flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	if Exists(dir) {
		v.SetConfigFile(filepath.Join(dir, FileName))
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
		}
	}

	cfg := &Config{
		Mode:    v.GetString("mode"),
		Include: getList(v, "include"),
		Exclude: getList(v, "exclude"),
		Quiet:   v.GetBool("quiet"),
	}

	if _, err := cfg.Policy(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Policy returns the minifier policy named by Mode
func (c *Config) Policy() (minifier.Policy, error) {
	return minifier.ParsePolicy(c.Mode)
}

// Options returns minifier options for this config
func (c *Config) Options() minifier.Options {
	policy, _ := c.Policy()
	return minifier.Options{Policy: policy}
}

// Exists checks if a luamin.yaml file exists in the directory
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// getList reads a key that may hold a comma-separated string, a YAML list or
// a string slice from repeated flags.
func getList(v *viper.Viper, key string) []string {
	switch val := v.Get(key).(type) {
	case []string:
		return splitList(strings.Join(val, ","))
	case []interface{}:
		items := make([]string, 0, len(val))
		for _, item := range val {
			items = append(items, fmt.Sprint(item))
		}
		return splitList(strings.Join(items, ","))
	default:
		return splitList(v.GetString(key))
	}
}

// splitList parses a comma-separated value into a slice, dropping empty items
func splitList(val string) []string {
	var result []string
	for _, item := range strings.Split(val, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
