package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/nattu22/pptgenerator/pkg/io"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	output  string // output file path (stdout if empty)
	jsonOut bool   // write the raw analysis JSON instead of the report
	refresh bool   // bypass the analysis cache
	full    bool   // include the per-layout text summary
}

// analyzeCommand creates the analyze command for inspecting template
// descriptors.
func (c *CLI) analyzeCommand() *cobra.Command {
	opts := analyzeOpts{}

	cmd := &cobra.Command{
		Use:   "analyze <template.json>",
		Short: "Analyze a template descriptor into layout capabilities",
		Long: `Analyze a template descriptor into layout capabilities.

The analyze command reads a template descriptor and classifies every slide
layout: placeholder roles, spatial sections, story type, and the scores that
drive layout selection. Layouts whose geometry cannot be classified are kept
as degraded fallbacks so the rest of the template stays usable.

Results are cached locally for faster subsequent runs.

Examples:
  pptgen analyze examples/boardroom.json            # Capability report
  pptgen analyze examples/boardroom.json --full     # Plus per-layout details
  pptgen analyze examples/boardroom.json --json     # Raw analysis on stdout
  pptgen analyze examples/boardroom.json -o out.analysis.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAnalyze(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write analysis JSON to file")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "write analysis JSON to stdout")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the analysis cache")
	cmd.Flags().BoolVar(&opts.full, "full", false, "include the per-layout summary")

	return cmd
}

// runAnalyze analyzes the descriptor and prints or writes the result.
func (c *CLI) runAnalyze(ctx context.Context, input string, opts analyzeOpts) error {
	analysis, cached, err := c.analyzeTemplate(ctx, input, opts.refresh)
	if err != nil {
		return err
	}

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if opts.jsonOut || opts.output != "" {
		out, err := openOutput(opts.output)
		if err != nil {
			return fmt.Errorf("open output %s: %w", opts.output, err)
		}
		defer out.Close()

		if err := pkgio.WriteAnalysis(analysis, out); err != nil {
			return fmt.Errorf("write analysis: %w", err)
		}
		if opts.output != "" {
			printSuccess("Analysis complete")
			printFile(opts.output)
		}
		return nil
	}

	printAnalysis(analysis, input, cached)
	if opts.full {
		printNewline()
		fmt.Println(analysis.Summary())
	}
	printNewline()
	printNextStep("Plan", fmt.Sprintf("%s plan payloads.json -t %s", appName, input))

	return nil
}

// analyzeTemplate runs template analysis with the on-disk cache in front of
// it. The boolean reports whether the analysis came from the cache.
func (c *CLI) analyzeTemplate(ctx context.Context, path string, refresh bool) (*template.Analysis, bool, error) {
	cache := c.analysisCache()
	key := analysisCacheKey(path)

	if cache != nil && !refresh {
		var analysis template.Analysis
		hit, err := cache.Get(key, &analysis)
		if err != nil {
			c.Logger.Debug("analysis cache read failed", "key", key, "error", err)
		}
		if hit {
			return &analysis, true, nil
		}
	}

	prog := newProgress(c.Logger)
	analysis, err := c.newRunner().Analyze(ctx, pipeline.Options{Template: path})
	if err != nil {
		return nil, false, err
	}
	prog.done(fmt.Sprintf("Analyzed %d layouts", analysis.TotalLayouts))

	if cache != nil {
		if err := cache.Set(key, analysis); err != nil {
			c.Logger.Debug("analysis cache write failed", "key", key, "error", err)
		}
	}
	return analysis, false, nil
}

// analysisCacheKey derives the cache key for a descriptor path. The file's
// modification time is part of the key so edits invalidate stale entries.
func analysisCacheKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	info, err := os.Stat(path)
	if err != nil {
		return abs
	}
	return fmt.Sprintf("%s@%d", abs, info.ModTime().UnixNano())
}

// printAnalysis renders the capability report for humans.
func printAnalysis(a *template.Analysis, source string, cached bool) {
	usable := 0
	fallbacks := 0
	for i := range a.Layouts {
		if a.Layouts[i].Usable() {
			usable++
		}
		if a.Layouts[i].LayoutType == template.LayoutFallback {
			fallbacks++
		}
	}

	printSuccess("Analyzed %s", StyleHighlight.Render(a.TemplateName))
	printKeyValue("Source", source)
	printKeyValue("Layouts", StyleNumber.Render(fmt.Sprintf("%d", a.TotalLayouts)))
	printKeyValue("Usable", StyleNumber.Render(fmt.Sprintf("%d", usable)))
	if cached {
		printKeyValue("Analysis", styleCached.Render(iconCached))
	} else {
		printKeyValue("Analysis", styleComputed.Render(iconFresh))
	}
	if fallbacks > 0 {
		printWarning("%d layout(s) degraded to fallback capabilities", fallbacks)
	}
	printNewline()
	fmt.Println(layoutTable(a))
}

// layoutTable renders the per-layout capability table.
func layoutTable(a *template.Analysis) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for i := range a.Layouts {
		c := &a.Layouts[i]
		rows = append(rows, []string{
			fmt.Sprintf("%d", c.Index),
			c.Name,
			string(c.LayoutType),
			string(c.StoryType),
			fmt.Sprintf("%d", len(c.Content)),
			fmt.Sprintf("%.0f", c.ComplexityScore),
			fmt.Sprintf("%.0f", c.ExecutiveSuitability),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Layout", "Type", "Story", "Content", "Complexity", "Exec").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= len(a.Layouts) {
				return lipgloss.NewStyle()
			}
			c := &a.Layouts[row]
			if c.LayoutType == template.LayoutFallback {
				return StyleWarning
			}
			if !c.Usable() {
				return StyleDim
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
