// Package cli implements the pptgen command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/nattu22/pptgenerator/pkg/buildinfo"
	"github.com/nattu22/pptgenerator/pkg/httputil"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pptgen"

	// analysisCacheTTL is how long cached template analyses stay valid on
	// disk. Descriptor edits invalidate earlier via the mtime in the key.
	analysisCacheTTL = 24 * time.Hour

	// cliSessionTTL is the lifetime of deck sessions created by CLI runs,
	// long enough to revise a deck across a few working days.
	cliSessionTTL = 7 * 24 * time.Hour
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Pptgen plans presentation decks against PowerPoint templates",
		Long: `Pptgen analyzes PowerPoint template descriptors, scores each layout's
capabilities, and plans which layout should carry each slide of a deck.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.reviseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// analysisCache opens the on-disk analysis cache. Failures disable
// caching for the run rather than failing the command.
func (c *CLI) analysisCache() *httputil.Cache {
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Debug("analysis cache disabled", "error", err)
		return nil
	}
	cache, err := httputil.NewCache(dir, analysisCacheTTL)
	if err != nil {
		c.Logger.Debug("analysis cache disabled", "error", err)
		return nil
	}
	return cache.Namespace("analysis:")
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pptgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
