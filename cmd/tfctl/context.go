package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"translationflow/internal/config"
	"translationflow/internal/logger"
	"translationflow/internal/repository/backend"
	"translationflow/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type projectOpener func(ctx context.Context, cfg *config.Config) (service.ProjectServiceInterface, io.Closer, error)

type commandContext struct {
	verbose    bool
	jsonOutput bool

	loadConfig func() (*config.Config, error)
	open       projectOpener

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext() *commandContext {
	return &commandContext{
		loadConfig: config.Load,
		open:       openProjectService,
	}
}

func (c *commandContext) ensureConfig(cmd *cobra.Command) (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := c.loadConfig()
		if err != nil {
			c.configErr = fmt.Errorf("load configuration: %w", err)
			return
		}
		level := "warn"
		if c.verbose {
			level = cfg.LogLevel
		}
		logger.Setup(logger.Options{Level: level})
		logrus.SetOutput(cmd.ErrOrStderr())
		c.config = cfg
	})
	return c.config, c.configErr
}

// withProjects opens the backend for the duration of fn
func (c *commandContext) withProjects(cmd *cobra.Command, fn func(service.ProjectServiceInterface) error) error {
	cfg, err := c.ensureConfig(cmd)
	if err != nil {
		return err
	}
	svc, closer, err := c.open(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closer.Close()
	return fn(svc)
}

func (c *commandContext) printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func openProjectService(ctx context.Context, cfg *config.Config) (service.ProjectServiceInterface, io.Closer, error) {
	store, err := backend.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s backend: %w", cfg.RepositoryBackend, err)
	}
	return service.NewProjectService(store.Repos.Projects, service.NewValidator()), store, nil
}
