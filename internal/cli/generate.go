package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	pkgio "github.com/nattu22/pptgenerator/pkg/io"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
)

// geminiKeyEnv is the environment variable holding the Gemini API key.
const geminiKeyEnv = "GEMINI_API_KEY"

// generateCommand creates the generate command for model-backed decks.
func (c *CLI) generateCommand() *cobra.Command {
	opts := planOpts{}

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate slide content for a topic and plan it",
		Long: `Generate slide content for a topic and plan it against a template.

The generate command asks the Gemini model for a deck outline on the topic,
then plans the generated slides against the template like 'plan' does. The
deck is kept in a local session so 'revise' can refine it afterwards.

Requires ` + geminiKeyEnv + ` in the environment or a .env file.

Examples:
  pptgen generate "Q3 revenue review" -t examples/boardroom.json
  pptgen generate "Platform migration plan" --slides 8
  pptgen generate "Hiring update" --info "focus on engineering"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	addPlanFlags(cmd, &opts)

	return cmd
}

// runGenerate generates deck content for the topic and writes the plan.
func (c *CLI) runGenerate(ctx context.Context, topic string, opts planOpts) error {
	if err := c.loadEnv(); err != nil {
		return err
	}

	pipeOpts, err := c.buildOptions(ctx, opts)
	if err != nil {
		return err
	}
	if pipeOpts.Template == "" {
		return nil
	}

	pipeOpts.Topic = topic
	pipeOpts.SlideCount = opts.slides
	pipeOpts.Generator = pipeline.GeneratorGemini

	spinner := newSpinnerWithContext(ctx, "Generating deck content...")
	spinner.Start()

	result, err := c.newRunner().Generate(ctx, pipeOpts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = planOutputPath("")
	}

	if err := pkgio.ExportPlan(result.Plan, outputPath); err != nil {
		return err
	}

	c.saveSession(ctx, result, pipeOpts.Template)

	printSuccess("Generated %q", result.Deck.Title)
	printFile(outputPath)
	printStats(result.Stats.SlideCount, result.Stats.DegradedCount, result.CacheInfo.AnalysisHit)
	printDetail("content generated in %s", result.Stats.GenerateTime.Round(time.Millisecond))
	printNewline()
	printNextStep("Revise", fmt.Sprintf("%s revise \"shorten the intro\"", appName))

	return nil
}

// loadEnv loads .env if present and checks the Gemini key is available.
func (c *CLI) loadEnv() error {
	_ = godotenv.Load()
	if os.Getenv(geminiKeyEnv) == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig,
			"%s is not set; export it or add it to a .env file", geminiKeyEnv)
	}
	return nil
}
