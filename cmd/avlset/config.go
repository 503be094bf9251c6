package main

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// envPrefix is the prefix of environment variables read into Config.
const envPrefix = "AVLSET"

// Config is loaded from AVLSET_* environment variables, command line flags override it.
type Config struct {
	KeyType  string `envconfig:"KEY_TYPE" default:"int"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
	Validate bool   `envconfig:"VALIDATE" default:"false"`
	Pooled   bool   `envconfig:"POOLED" default:"false"`
}

func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, errors.Wrap(err, "error loading environment variables")
	}
	return cfg, nil
}
