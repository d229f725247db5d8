package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/thomas-vilte/matereadme/internal/commands/completion_helper"
	cfg "github.com/thomas-vilte/matereadme/internal/config"
	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"github.com/thomas-vilte/matereadme/internal/services/cost"
	"github.com/thomas-vilte/matereadme/internal/services/routing"
	"github.com/thomas-vilte/matereadme/internal/ui"
	"github.com/thomas-vilte/matereadme/internal/vcs"
	"github.com/urfave/cli/v3"
)

// ReadmeService is the part of the README service the command drives.
type ReadmeService interface {
	GenerateForRepository(ctx context.Context, ref vcs.Reference, opts models.GenerateOptions) (*models.GenerationResult, error)
	PublishReadme(ctx context.Context, ref vcs.Reference, content, message string) (*models.PublishResult, error)
}

// ReadmeServiceFactory builds a ReadmeService reporting progress to the given handler.
type ReadmeServiceFactory interface {
	CreateReadmeService(ctx context.Context, progress func(models.ProgressEvent)) (ReadmeService, error)
}

// ActivityRecorder stores a finished generation.
type ActivityRecorder interface {
	SaveActivity(record cost.ActivityRecord) error
}

type GenerateCommand struct {
	factory    ReadmeServiceFactory
	recorder   ActivityRecorder
	calculator *cost.Calculator
	confirm    func(question string) bool
}

func NewGenerateCommand(factory ReadmeServiceFactory, recorder ActivityRecorder) *GenerateCommand {
	return &GenerateCommand{
		factory:    factory,
		recorder:   recorder,
		calculator: cost.NewCalculator(),
		confirm:    ui.AskConfirmation,
	}
}

func (c *GenerateCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"g"},
		Usage:     t.GetMessage("generate.usage", 0, nil),
		ArgsUsage: "<owner/repo | url>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "prompt",
				Aliases: []string{"p"},
				Usage:   t.GetMessage("generate.prompt_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "no-analysis",
				Usage: t.GetMessage("generate.no_analysis_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   t.GetMessage("generate.output_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   t.GetMessage("generate.lang_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "commit",
				Aliases: []string{"c"},
				Usage:   t.GetMessage("generate.commit_flag", 0, nil),
			},
			&cli.StringFlag{
				Name:    "message",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("generate.message_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   t.GetMessage("generate.yes_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "show-analysis",
				Usage: t.GetMessage("generate.show_analysis_flag", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return c.run(ctx, cmd, t, config)
		},
	}
}

func (c *GenerateCommand) run(ctx context.Context, cmd *cli.Command, t *i18n.Translations, config *cfg.Config) error {
	log := logger.FromContext(ctx)
	start := time.Now()

	arg := cmd.Args().First()
	if arg == "" {
		msg := t.GetMessage("error.repository_required", 0, nil)
		ui.PrintErrorWithSuggestion(msg, t.GetMessage("ui.repository_example", 0, map[string]interface{}{"Command": "generate"}))
		return errors.New(msg)
	}

	ref, err := vcs.ParseReference(arg)
	if err != nil {
		ui.HandleAppError(err, t)
		return err
	}

	lang := cmd.String("lang")
	if lang != "" && !cfg.IsValidLanguage(lang) {
		return errors.New(t.GetMessage("error.invalid_language", 0, map[string]interface{}{"Lang": lang}))
	}
	if lang == "" && config != nil {
		lang = config.Language
	}

	opts := models.GenerateOptions{
		CustomInstruction:   strings.TrimSpace(cmd.String("prompt")),
		UseEnhancedAnalysis: !cmd.Bool("no-analysis"),
		Language:            lang,
	}

	log.Info("executing generate command",
		"repo", ref.String(),
		"enhanced", opts.UseEnhancedAnalysis,
		"has_prompt", opts.CustomInstruction != "",
		"commit", cmd.Bool("commit"))

	spinner := ui.NewSmartSpinner(t.GetMessage("ui.fetching_repository", 0, map[string]interface{}{"Repo": ref.String()}))
	spinner.Start()

	service, err := c.factory.CreateReadmeService(ctx, func(event models.ProgressEvent) {
		switch event.Stage {
		case models.ProgressAnalyzing:
			spinner.UpdateMessage(t.GetMessage("ui.analyzing_repository", 0, map[string]interface{}{"Repo": ref.String()}))
		case models.ProgressAnalysisFallback:
			spinner.Log(ui.Warning.Sprint(t.GetMessage("ui.analysis_fallback", 0, nil)))
		case models.ProgressGenerating:
			spinner.UpdateMessage(t.GetMessage("ui.generating_readme", 0, map[string]interface{}{
				"Mode": t.GetMessage("mode."+string(event.Mode), 0, nil),
			}))
		}
	})
	if err != nil {
		spinner.Stop()
		log.Error("failed to create README service",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		ui.HandleAppError(err, t)
		return fmt.Errorf(t.GetMessage("error.service_creation_error", 0, nil)+": %w", err)
	}

	result, err := service.GenerateForRepository(ctx, ref, opts)
	if err != nil {
		spinner.Error(t.GetMessage("ui.error_generating_readme", 0, nil))
		log.Error("failed to generate README",
			"repo", ref.String(),
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		ui.HandleAppError(err, t)
		return fmt.Errorf(t.GetMessage("error.generation_error", 0, nil)+": %w", err)
	}

	spinner.Success(t.GetMessage("ui.readme_generated", 0, map[string]interface{}{
		"Repo": ref.String(),
		"Mode": t.GetMessage("mode."+string(result.Mode), 0, nil),
	}))

	log.Info("README generated successfully",
		"repo", ref.String(),
		"mode", result.Mode,
		"length", len(result.Content),
		"duration_ms", time.Since(start).Milliseconds())

	if err := c.writeReadme(cmd, t, result.Content); err != nil {
		return err
	}

	if cmd.Bool("show-analysis") {
		_, _ = fmt.Fprintln(ui.Out, ui.RenderGenerationSummary(result, t))
		ui.PrintInfo(t.GetMessage(routing.Rationale(result.Mode), 0, nil))
	}

	c.reportUsage(t, ref, result)

	if cmd.Bool("commit") {
		return c.publish(ctx, cmd, t, service, ref, result.Content)
	}
	return nil
}

func (c *GenerateCommand) writeReadme(cmd *cli.Command, t *i18n.Translations, content string) error {
	path := cmd.String("output")
	if path == "" {
		_, _ = fmt.Fprintln(cmd.Root().Writer, content)
		return nil
	}

	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		appErr := domainErrors.ErrWriteOutput.WithError(err).WithContext("path", path)
		ui.HandleAppError(appErr, t)
		return appErr
	}
	ui.PrintSuccess(ui.Out, t.GetMessage("ui.readme_written", 0, map[string]interface{}{"Path": path}))
	return nil
}

func (c *GenerateCommand) reportUsage(t *i18n.Translations, ref vcs.Reference, result *models.GenerationResult) {
	if result.Usage == nil {
		return
	}

	var costUSD float64
	if result.Cached {
		ui.PrintInfo(t.GetMessage("ui.cache_hit", 0, nil))
	} else {
		costUSD = c.calculator.EstimateCost(result.Provider, result.Usage.Model, result.Usage.InputTokens, result.Usage.OutputTokens)
		_, _ = fmt.Fprintln(ui.Out)
		ui.PrintTokenUsage(result.Usage, costUSD, t)
	}

	if c.recorder == nil {
		return
	}
	if err := c.recorder.SaveActivity(cost.ActivityRecord{
		Timestamp:    time.Now(),
		Command:      "generate",
		Repository:   ref.String(),
		Mode:         string(result.Mode),
		Provider:     result.Provider,
		Model:        result.Usage.Model,
		TokensInput:  result.Usage.InputTokens,
		TokensOutput: result.Usage.OutputTokens,
		CostUSD:      costUSD,
		DurationMs:   result.Usage.DurationMs,
		CacheHit:     result.Cached,
	}); err != nil {
		ui.PrintWarning(t.GetMessage("ui.history_save_failed", 0, nil))
	}
}

func (c *GenerateCommand) publish(ctx context.Context, cmd *cli.Command, t *i18n.Translations, service ReadmeService, ref vcs.Reference, content string) error {
	if !cmd.Bool("yes") && !c.confirm(t.GetMessage("ui.confirm_commit", 0, map[string]interface{}{"Repo": ref.String()})) {
		ui.PrintInfo(t.GetMessage("ui.commit_cancelled", 0, nil))
		return nil
	}

	res, err := service.PublishReadme(ctx, ref, content, cmd.String("message"))
	if err != nil {
		ui.HandleAppError(err, t)
		return fmt.Errorf(t.GetMessage("error.publish_error", 0, nil)+": %w", err)
	}

	key := "ui.readme_updated"
	if res.Created {
		key = "ui.readme_created"
	}
	ui.PrintSuccess(ui.Out, t.GetMessage(key, 0, map[string]interface{}{
		"Repo": ref.String(),
		"SHA":  shortSHA(res.CommitSHA),
	}))
	if res.HTMLURL != "" {
		ui.PrintKeyValue("URL", res.HTMLURL)
	}
	return nil
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}
