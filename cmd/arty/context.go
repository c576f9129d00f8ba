package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/arty"
	"github.com/aretw0/arty/pkg/core"
)

type commandContext struct {
	configFlag *string
	dirFlag    *string
	formatFlag *string
	lockFlag   *bool
	verbose    *bool

	configOnce sync.Once
	config     cliConfig
	configErr  error

	serviceOnce sync.Once
	service     *core.Service
	serviceErr  error
}

func newCommandContext(configFlag, dirFlag, formatFlag *string, lockFlag, verbose *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		dirFlag:    dirFlag,
		formatFlag: formatFlag,
		lockFlag:   lockFlag,
		verbose:    verbose,
	}
}

func (c *commandContext) ensureConfig() (cliConfig, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := loadConfig(*c.configFlag)
		if err != nil {
			c.configErr = err
			return
		}
		if f := strings.TrimSpace(*c.formatFlag); f != "" {
			cfg.Format = strings.ToLower(f)
		}
		if *c.lockFlag {
			cfg.Locking = true
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logLevel resolves the effective level: --verbose wins over the config file.
func (c *commandContext) logLevel() slog.Level {
	if *c.verbose {
		return slog.LevelDebug
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return slog.LevelInfo
	}
	level, _ := parseLevel(cfg.LogLevel)
	return level
}

func (c *commandContext) ensureService() (*core.Service, error) {
	c.serviceOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.serviceErr = err
			return
		}
		c.service, c.serviceErr = arty.New(
			arty.WithLogger(slog.Default()),
			arty.WithFormat(cfg.Format),
			arty.WithLocking(cfg.Locking),
		)
	})
	return c.service, c.serviceErr
}

// directory resolves the managed directory: an explicit argument, then
// --dir, then the nearest ancestor holding a sidecar, then the working
// directory.
func (c *commandContext) directory(args []string) (string, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if d := strings.TrimSpace(*c.dirFlag); d != "" {
		return d, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	if root, err := arty.FindRoot(wd); err == nil {
		return root, nil
	}
	return wd, nil
}

// withCollection loads the managed directory and hands it to fn.
func (c *commandContext) withCollection(ctx context.Context, fn func(*core.Service, *core.Collection) error) error {
	svc, err := c.ensureService()
	if err != nil {
		return err
	}
	dir, err := c.directory(nil)
	if err != nil {
		return err
	}
	col, err := svc.Load(ctx, dir)
	if err != nil {
		return err
	}
	return fn(svc, col)
}
