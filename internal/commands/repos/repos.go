package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/thomas-vilte/matereadme/internal/commands/completion_helper"
	"github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/models"
	"github.com/thomas-vilte/matereadme/internal/ui"
	"github.com/urfave/cli/v3"
)

const defaultLimit = 30

type RepositoryLister interface {
	ListRepositories(ctx context.Context, limit int) ([]models.RepositoryMetadata, error)
}

type RepositoryListerFactory interface {
	CreateRepositoryLister(ctx context.Context) (RepositoryLister, error)
}

type ReposCommand struct {
	factory RepositoryListerFactory
}

func NewReposCommand(factory RepositoryListerFactory) *ReposCommand {
	return &ReposCommand{factory: factory}
}

func (c *ReposCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "repos",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("repos.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Value:   defaultLimit,
				Usage:   t.GetMessage("repos.limit_flag", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: t.GetMessage("repos.json_flag", 0, nil),
			},
		},
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			limit := cmd.Int("limit")
			if limit <= 0 {
				return errors.New(t.GetMessage("error.invalid_limit", 0, map[string]interface{}{"Limit": limit}))
			}

			lister, err := c.factory.CreateRepositoryLister(ctx)
			if err != nil {
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("error.service_creation_error", 0, nil)+": %w", err)
			}

			var repositories []models.RepositoryMetadata
			err = ui.WithSpinnerAndDuration(
				t.GetMessage("ui.listing_repositories", 0, nil),
				t.GetMessage("ui.repositories_listed", 0, nil),
				func() error {
					var listErr error
					repositories, listErr = lister.ListRepositories(ctx, limit)
					return listErr
				})
			if err != nil {
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("error.list_repositories_error", 0, nil)+": %w", err)
			}

			logger.Debug(ctx, "repositories listed", "count", len(repositories), "limit", limit)

			if cmd.Bool("json") {
				enc := json.NewEncoder(cmd.Root().Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(repositories)
			}

			_, _ = fmt.Fprintln(cmd.Root().Writer, ui.RenderRepositoryList(repositories, t))
			return nil
		},
	}
}
