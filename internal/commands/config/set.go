package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/ui"
	"github.com/urfave/cli/v3"
)

var secretKeys = map[string]bool{
	"api_key":      true,
	"github_token": true,
	"token":        true,
}

func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     t.GetMessage("config.set_usage", 0, nil),
		ArgsUsage: "<key> <value>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return errors.New(t.GetMessage("config.set_args_error", 0, nil))
			}
			key := cmd.Args().Get(0)
			value := cmd.Args().Get(1)

			// The in-memory config carries environment overrides; only file values are persisted.
			target := cfg
			if cfg.PathFile != "" {
				onDisk, err := config.LoadConfig(cfg.PathFile)
				if err != nil {
					return fmt.Errorf(t.GetMessage("config.load_error", 0, nil)+": %w", err)
				}
				target = onDisk
			}

			if err := target.SetValue(key, value); err != nil {
				ui.HandleAppError(err, t)
				return fmt.Errorf(t.GetMessage("config.set_error", 0, map[string]interface{}{"Key": key})+": %w", err)
			}

			if err := config.SaveConfig(target); err != nil {
				return fmt.Errorf(t.GetMessage("config.save_error", 0, nil)+": %w", err)
			}

			shown := value
			if secretKeys[strings.ToLower(key)] {
				shown = config.MaskSecret(value)
			}
			logger.Debug(ctx, "configuration updated", "key", key)
			ui.PrintSuccess(ui.Out, t.GetMessage("config.set_success", 0, map[string]interface{}{
				"Key":   key,
				"Value": shown,
			}))
			return nil
		},
	}
}
