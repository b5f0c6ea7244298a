package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	pkgio "github.com/nattu22/pptgenerator/pkg/io"
	"github.com/nattu22/pptgenerator/pkg/match"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
	"github.com/nattu22/pptgenerator/pkg/session"
	"github.com/nattu22/pptgenerator/pkg/template"
)

// planOpts holds the command-line flags shared by plan and generate.
type planOpts struct {
	template     string // descriptor path, or a name under templatesDir
	templatesDir string // directory scanned for descriptors
	topic        string // topic for placeholder content (plan only)
	slides       int    // slide count when generating content
	offline      bool   // use the static backend instead of a model
	refresh      bool   // bypass the analysis cache
	output       string // output file (default: derived from input)
	configPath   string // scoring tunables TOML
	info         string // extra prompt context for generation
}

// planCommand creates the plan command for planning a deck against a
// template.
func (c *CLI) planCommand() *cobra.Command {
	opts := planOpts{}

	cmd := &cobra.Command{
		Use:   "plan [payloads.json]",
		Short: "Plan which template layout carries each slide of a deck",
		Long: `Plan which template layout carries each slide of a deck.

The plan command takes a slide payloads file (a deck object or a bare JSON
array of slide payloads), scores every usable layout of the template against
each slide, and writes a deck plan with one layout selection and content
mapping per slide.

Without a payloads file, --topic drafts placeholder content for the topic so
a template can be tried out offline. For model-generated content use
'pptgen generate' instead.

If no template is given, descriptors in the templates directory are listed
for interactive selection.

Examples:
  pptgen plan payloads.json -t examples/boardroom.json
  pptgen plan payloads.json                      # Pick a template interactively
  pptgen plan --topic "Q3 revenue review" --offline
  pptgen plan payloads.json -t boardroom --config tunables.toml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runPlan(cmd.Context(), input, opts)
		},
	}

	addPlanFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.topic, "topic", "", "draft placeholder content for a topic instead of reading payloads")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "use the static content backend (required with --topic)")

	return cmd
}

// addPlanFlags registers the planning flags shared by plan and generate.
func addPlanFlags(cmd *cobra.Command, opts *planOpts) {
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "template descriptor path or name")
	cmd.Flags().StringVar(&opts.templatesDir, "templates-dir", ".", "directory scanned for template descriptors")
	cmd.Flags().IntVar(&opts.slides, "slides", pipeline.DefaultSlideCount, "slide count when generating content")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the analysis cache")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: <input>.plan.json)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "scoring tunables TOML file")
	cmd.Flags().StringVar(&opts.info, "info", "", "extra context for content generation")
}

// runPlan plans a deck from a payloads file or a drafted topic and writes
// the deck plan.
func (c *CLI) runPlan(ctx context.Context, input string, opts planOpts) error {
	switch {
	case input == "" && opts.topic == "":
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "provide a payloads file or --topic")
	case input != "" && opts.topic != "":
		return apperrors.New(apperrors.ErrCodeInvalidOptions, "payloads file and --topic are mutually exclusive")
	case opts.topic != "" && !opts.offline:
		return apperrors.New(apperrors.ErrCodeInvalidOptions,
			"planning a topic needs a model backend; use '%s generate' or pass --offline for placeholder content", appName)
	}

	pipeOpts, err := c.buildOptions(ctx, opts)
	if err != nil {
		return err
	}
	if pipeOpts.Template == "" {
		return nil
	}

	if input != "" {
		deck, err := pkgio.ImportDeck(input)
		if err != nil {
			return err
		}
		pipeOpts.Deck = deck
	} else {
		pipeOpts.Topic = opts.topic
		pipeOpts.SlideCount = opts.slides
		pipeOpts.Generator = pipeline.GeneratorStatic
	}

	spinner := newSpinnerWithContext(ctx, "Planning deck...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Planning failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = planOutputPath(input)
	}

	if err := pkgio.ExportPlan(result.Plan, outputPath); err != nil {
		return err
	}

	c.saveSession(ctx, result, pipeOpts.Template)

	printSuccess("Plan complete")
	printFile(outputPath)
	printStats(result.Stats.SlideCount, result.Stats.DegradedCount, result.CacheInfo.AnalysisHit)
	printNewline()
	printNextStep("Revise", fmt.Sprintf("%s revise \"tighten slide 2\"", appName))

	return nil
}

// buildOptions resolves the template and assembles pipeline options from
// the shared flags. The returned options carry an empty Template when the
// user dismissed the interactive selection.
func (c *CLI) buildOptions(ctx context.Context, opts planOpts) (pipeline.Options, error) {
	templatePath, err := c.resolveTemplate(ctx, opts.template, opts.templatesDir)
	if err != nil {
		return pipeline.Options{}, err
	}

	pipeOpts := pipeline.Options{
		Template:       templatePath,
		Refresh:        opts.refresh,
		AdditionalInfo: opts.info,
		Logger:         c.Logger,
	}

	if opts.configPath != "" {
		tunables, err := match.LoadTunables(opts.configPath)
		if err != nil {
			return pipeline.Options{}, err
		}
		pipeOpts.Tunables = tunables
	}

	return pipeOpts, nil
}

// resolveTemplate turns the --template flag into a descriptor path. An
// empty flag triggers discovery in dir, with interactive selection when
// several descriptors qualify. Returns the empty string when the user
// dismissed the selection.
func (c *CLI) resolveTemplate(ctx context.Context, flag, dir string) (string, error) {
	if flag != "" {
		if _, err := os.Stat(flag); err == nil {
			return flag, nil
		}
		name := strings.TrimSuffix(flag, ".json")
		candidate := filepath.Join(dir, name+".json")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		return "", apperrors.New(apperrors.ErrCodeTemplateNotFound,
			"no template %q (looked for %s)", flag, candidate)
	}

	choices, err := discoverTemplates(ctx, dir)
	if err != nil {
		return "", err
	}

	switch len(choices) {
	case 0:
		return "", apperrors.New(apperrors.ErrCodeTemplateNotFound,
			"no template descriptors in %s (pass --template)", dir)
	case 1:
		printInfo("Template: %s", StyleHighlight.Render(choices[0].Name))
		return choices[0].Path, nil
	}

	printInfo("Found %d templates", len(choices))
	printNewline()

	m := NewTemplateListModel(choices)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	fm, ok := finalModel.(TemplateListModel)
	if !ok || fm.Selected == nil {
		printDetail("No template selected")
		return "", nil
	}

	printInfo("Template: %s", StyleHighlight.Render(fm.Selected.Name))
	return fm.Selected.Path, nil
}

// discoverTemplates scans dir for template descriptors. Files that do not
// parse as descriptors, or parse without layouts, are skipped; descriptors
// whose analysis yields no usable layout are listed but unselectable.
func discoverTemplates(ctx context.Context, dir string) ([]TemplateChoice, error) {
	logger := loggerFromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read templates dir %s", dir)
	}

	quiet := template.NewAnalyzer(log.New(io.Discard))

	choices := []TemplateChoice{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		spec, err := template.ReadSpecFile(path)
		if err != nil {
			logger.Debug("skipping descriptor", "path", path, "error", err)
			continue
		}
		if len(spec.Layouts) == 0 {
			continue
		}

		choice := TemplateChoice{
			Path:    path,
			Name:    spec.Name,
			Layouts: len(spec.Layouts),
		}
		if choice.Name == "" {
			choice.Name = strings.TrimSuffix(entry.Name(), ".json")
		}
		if info, err := entry.Info(); err == nil {
			choice.Modified = info.ModTime()
		}
		if analysis, err := quiet.Analyze(spec); err == nil {
			for i := range analysis.Layouts {
				if analysis.Layouts[i].Usable() {
					choice.Usable++
				}
			}
		}
		choices = append(choices, choice)
	}
	return choices, nil
}

// saveSession records the planned deck so a later revise finds it. Session
// failures are logged and swallowed; the plan on disk is the deliverable.
func (c *CLI) saveSession(ctx context.Context, result *pipeline.Result, templatePath string) {
	store, err := session.NewCLIStore()
	if err != nil {
		c.Logger.Debug("deck session store unavailable", "error", err)
		return
	}

	sess, err := session.New(result.Deck.Title, templatePath, cliSessionTTL)
	if err != nil {
		c.Logger.Debug("deck session not created", "error", err)
		return
	}
	sess.Deck = result.DeckJSON
	if plan, err := json.Marshal(result.Plan); err == nil {
		sess.Plan = plan
	}

	if err := store.Save(ctx, sess); err != nil {
		c.Logger.Debug("deck session not saved", "error", err)
		return
	}
	c.Logger.Debug("deck session saved", "id", sess.ID)
}

// planOutputPath derives the default plan path from the input file.
func planOutputPath(input string) string {
	if input == "" {
		return "deck.plan.json"
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".plan.json"
}
