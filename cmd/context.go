package main

import (
	"photosift/config"
	"photosift/logger"
)

// commandContext carries the persistent flag values and the resolved
// configuration into each subcommand.
type commandContext struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

// setup builds the effective configuration: defaults, then the config file,
// then flag overrides, and initializes logging.
func (c *commandContext) setup() error {
	cfg := config.Default()
	if c.configPath != "" {
		if err := cfg.LoadFile(c.configPath); err != nil {
			return err
		}
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	logger.Init(cfg.LogLevel)
	c.cfg = cfg
	return nil
}
