package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/thomas-vilte/matereadme/internal/commands/completion_helper"
	"github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"github.com/thomas-vilte/matereadme/internal/ui"
	"github.com/thomas-vilte/matereadme/internal/vcs"
	"github.com/urfave/cli/v3"
)

type Analyzer interface {
	Analyze(ctx context.Context, ref vcs.Reference) (*models.AnalysisReport, error)
}

type AnalyzerFactory interface {
	CreateAnalyzer(ctx context.Context) (Analyzer, error)
}

type AnalyzeCommand struct {
	factory AnalyzerFactory
}

func NewAnalyzeCommand(factory AnalyzerFactory) *AnalyzeCommand {
	return &AnalyzeCommand{factory: factory}
}

func (c *AnalyzeCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     t.GetMessage("analyze.usage", 0, nil),
		ArgsUsage: "<owner/repo | url>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: t.GetMessage("analyze.json_flag", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			start := time.Now()

			arg := cmd.Args().First()
			if arg == "" {
				msg := t.GetMessage("error.repository_required", 0, nil)
				ui.PrintErrorWithSuggestion(msg, t.GetMessage("ui.repository_example", 0, map[string]interface{}{"Command": "analyze"}))
				return errors.New(msg)
			}
			ref, err := vcs.ParseReference(arg)
			if err != nil {
				ui.HandleAppError(err, t)
				return err
			}

			analyzer, err := c.factory.CreateAnalyzer(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("error.service_creation_error", 0, nil)+": %w", err)
			}

			repoData := map[string]interface{}{"Repo": ref.String()}
			var report *models.AnalysisReport
			err = ui.WithSpinnerAndDuration(
				t.GetMessage("ui.analyzing_repository", 0, repoData),
				t.GetMessage("ui.repository_analyzed", 0, repoData),
				func() error {
					var analyzeErr error
					report, analyzeErr = analyzer.Analyze(ctx, ref)
					return analyzeErr
				})
			if err != nil {
				ui.PrintError(ui.Out, t.GetMessage("ui.error_analyzing_repository", 0, nil))
				logger.Error(ctx, "repository analysis failed", err,
					"repo", ref.String(),
					"duration_ms", time.Since(start).Milliseconds())
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("error.analysis_error", 0, nil)+": %w", err)
			}

			logger.Info(ctx, "repository analyzed",
				"repo", ref.String(),
				"project_type", report.Personalization.ProjectType,
				"duration_ms", time.Since(start).Milliseconds())

			if cmd.Bool("json") {
				enc := json.NewEncoder(cmd.Root().Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			_, _ = fmt.Fprintln(cmd.Root().Writer, ui.RenderAnalysisReport(report, t))
			return nil
		},
	}
}
