package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
	pkgio "github.com/nattu22/pptgenerator/pkg/io"
	"github.com/nattu22/pptgenerator/pkg/pipeline"
	"github.com/nattu22/pptgenerator/pkg/session"
)

// reviseOpts holds the command-line flags for the revise command.
type reviseOpts struct {
	deckID string // deck session id (default: most recent)
	output string // output file (default: deck.plan.json)
	info   string // extra prompt context
}

// reviseCommand creates the revise command for refining a planned deck.
func (c *CLI) reviseCommand() *cobra.Command {
	opts := reviseOpts{}

	cmd := &cobra.Command{
		Use:   "revise <instruction>...",
		Short: "Revise the most recent deck with new instructions",
		Long: `Revise a planned deck with new instructions and replan it.

The revise command takes the deck from the most recent plan or generate run
(or the session named by --deck), asks the Gemini model to apply the given
instructions to it, and plans the revised deck against the same template.
Each deck carries up to ` + fmt.Sprintf("%d", session.MaxRevisions) + ` revision rounds.

Requires ` + geminiKeyEnv + ` in the environment or a .env file.

Examples:
  pptgen revise "tighten slide 2"
  pptgen revise "drop the roadmap slide" "add a risks slide"
  pptgen revise "shorter bullets" --deck 3f9c21aa`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRevise(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.deckID, "deck", "", "deck session id (default: most recent)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: deck.plan.json)")
	cmd.Flags().StringVar(&opts.info, "info", "", "extra context for content generation")

	return cmd
}

// runRevise applies the instructions to the session's deck and replans it.
func (c *CLI) runRevise(ctx context.Context, instructions []string, opts reviseOpts) error {
	if err := c.loadEnv(); err != nil {
		return err
	}

	store, err := session.NewCLIStore()
	if err != nil {
		return err
	}

	sess, err := c.loadDeckSession(ctx, store, opts.deckID)
	if err != nil {
		return err
	}
	if sess.Deck == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"deck session %s has no content to revise", sess.ID)
	}

	for _, instruction := range instructions {
		if err := sess.AddRevision(instruction); err != nil {
			return err
		}
	}

	pipeOpts := pipeline.Options{
		Template:       sess.Template,
		AdditionalInfo: opts.info,
		Generator:      pipeline.GeneratorGemini,
		Logger:         c.Logger,
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Revising %q...", sess.Topic))
	spinner.Start()

	result, err := c.newRunner().Revise(ctx, sess.Deck, instructions, pipeOpts)
	if err != nil {
		spinner.StopWithError("Revision failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	sess.Deck = result.DeckJSON
	if plan, err := json.Marshal(result.Plan); err == nil {
		sess.Plan = plan
	}
	sess.Touch(cliSessionTTL)
	if err := store.Save(ctx, sess); err != nil {
		c.Logger.Debug("deck session not saved", "error", err)
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = planOutputPath("")
	}
	if err := pkgio.ExportPlan(result.Plan, outputPath); err != nil {
		return err
	}

	printSuccess("Revised %q", result.Deck.Title)
	printKeyValue("Deck", shortID(sess.ID))
	printKeyValue("Revision", fmt.Sprintf("%d of %d", len(sess.Revisions), session.MaxRevisions))
	printFile(outputPath)
	printStats(result.Stats.SlideCount, result.Stats.DegradedCount, result.CacheInfo.AnalysisHit)

	return nil
}

// loadDeckSession fetches the session to revise: the most recent one, or
// the one named by id.
func (c *CLI) loadDeckSession(ctx context.Context, store *session.CLIStore, id string) (*session.Session, error) {
	var sess *session.Session
	var err error
	if id == "" {
		sess, err = store.Latest(ctx)
	} else {
		id, err = store.Resolve(ctx, id)
		if err != nil {
			return nil, err
		}
		sess, err = store.Get(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if sess == nil {
		printWarning("No deck session found")
		printDetail("Run '%s plan' or '%s generate' first", appName, appName)
		return nil, apperrors.New(apperrors.ErrCodeSessionNotFound, "no deck session to revise")
	}
	return sess, nil
}

// shortID returns the first segment of a session id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
