package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/nattu22/pptgenerator/internal/server"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
	"github.com/nattu22/pptgenerator/pkg/session"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr         string        // listen address
	templatesDir string        // template registry directory
	redisURL     string        // redis session backend, memory when empty
	generator    string        // default content backend
	configPath   string        // scoring tunables TOML
	ttl          time.Duration // deck session lifetime
}

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{
		addr:         server.DefaultAddr,
		templatesDir: "examples",
		generator:    pipeline.DefaultGenerator,
		ttl:          session.DefaultTTL,
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the planning pipeline over HTTP",
		Long: `Serve the planning pipeline over HTTP.

Endpoints:
  GET  /api/health                     liveness and version
  GET  /api/templates                  registered templates
  POST /api/templates/{name}/analysis  analyze a template
  POST /api/plan                       plan a deck, creating a session
  POST /api/decks/{id}/revise          revise a deck session
  GET  /api/decks/{id}                 fetch a session's latest plan

Templates are registered by dropping descriptor JSON files into the
templates directory. Deck sessions live in memory unless --redis-url
points at a Redis instance.

Examples:
  pptgen serve
  pptgen serve --addr :9090 --templates-dir ./templates
  pptgen serve --redis-url redis://localhost:6379/0
  pptgen serve --generator static                # no model calls`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.templatesDir, "templates-dir", opts.templatesDir, "directory of template descriptors")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "redis URL for the session store (default: in-memory)")
	cmd.Flags().StringVar(&opts.generator, "generator", opts.generator, "default content backend: gemini, static")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "scoring tunables TOML file")
	cmd.Flags().DurationVar(&opts.ttl, "session-ttl", opts.ttl, "deck session lifetime")

	return cmd
}

// runServe starts the HTTP server and blocks until the context is
// cancelled or the listener fails.
func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	if err := pipeline.ValidateGenerator(opts.generator); err != nil {
		return err
	}
	if opts.generator == pipeline.GeneratorGemini {
		if err := c.loadEnv(); err != nil {
			return err
		}
	}

	cfg := server.Config{
		TemplateDir: opts.templatesDir,
		Logger:      c.Logger,
		Generator:   opts.generator,
		TTL:         opts.ttl,
	}

	if opts.configPath != "" {
		tunables, err := match.LoadTunables(opts.configPath)
		if err != nil {
			return err
		}
		cfg.Tunables = tunables
	}

	if opts.redisURL != "" {
		store, err := session.NewRedisStore(ctx, session.RedisConfig{URL: opts.redisURL})
		if err != nil {
			return err
		}
		defer store.Close()
		cfg.Store = store
		c.Logger.Info("using redis session store")
	}

	srv := server.New(cfg)
	return srv.ListenAndServe(ctx, opts.addr)
}
