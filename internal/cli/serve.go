package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/sketchwire/sketchwire/internal/api"
	"github.com/sketchwire/sketchwire/pkg/cache"
	"github.com/sketchwire/sketchwire/pkg/studio"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		redisAddr  string
		noCache    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the sketchwire HTTP API server",
		Long: `Run the HTTP API server exposing the sketch renderer.

Configuration is read from an optional TOML file; flags override file
settings, and the PORT environment variable overrides both.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadServerConfig(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if redisAddr != "" {
				cfg.Redis.Addr = redisAddr
			}
			if noCache {
				cfg.Cache.Disabled = true
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8000)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the shared cache (host:port)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg ServerConfig) error {
	store, err := c.newServerCache(ctx, cfg)
	if err != nil {
		return err
	}

	runner := studio.NewRunner(store, nil, c.Logger)
	defer runner.Close()

	srv := api.New(runner, c.Logger, api.Config{
		Addr:           cfg.Addr,
		AllowedOrigins: cfg.AllowedOrigins,
		MongoURI:       cfg.Mongo.URI,
		DatabaseName:   cfg.Mongo.Database,
	})
	return srv.ListenAndServe(ctx)
}

// newServerCache picks the cache backend: Redis when configured, otherwise a
// local file cache. An unreachable Redis fails startup rather than silently
// degrading, since server deployments rely on the shared cache.
func (c *CLI) newServerCache(ctx context.Context, cfg ServerConfig) (cache.Cache, error) {
	if cfg.Cache.Disabled {
		c.Logger.Debug("render cache disabled")
		return cache.NewNullCache(), nil
	}

	if cfg.Redis.Addr != "" {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		store, err := cache.NewRedisCache(connectCtx, cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis cache", "addr", cfg.Redis.Addr)
		return store, nil
	}

	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			c.Logger.Warn("cache directory unavailable, caching disabled", "err", err)
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}
