// Package viper loads the mananki configuration file.
package viper

import (
	mananki "github.com/maiatoja152/man-to-anki"
	"github.com/spf13/viper"
)

// DefaultPath is where the configuration is looked up when no path is given.
const DefaultPath = "config.json"

// Load reads the JSON configuration file at path and returns a validated
// Config. The configuration is loaded exactly once per run and passed by
// value from there on.
func Load(path string) (mananki.Config, error) {
	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return mananki.Config{}, mananki.Errorf(mananki.EINVALID, "failed to read config %s: %v", path, err)
	}

	var cfg mananki.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return mananki.Config{}, mananki.Errorf(mananki.EINVALID, "failed to parse config %s: %v", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return mananki.Config{}, err
	}
	return cfg, nil
}
