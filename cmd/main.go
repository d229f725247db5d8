package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/matereadme/internal/commands/analyze"
	"github.com/thomas-vilte/matereadme/internal/commands/config"
	"github.com/thomas-vilte/matereadme/internal/commands/generate"
	"github.com/thomas-vilte/matereadme/internal/commands/registry"
	"github.com/thomas-vilte/matereadme/internal/commands/repos"
	"github.com/thomas-vilte/matereadme/internal/commands/stats"
	cfg "github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/factory"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/logger"
	"github.com/thomas-vilte/matereadme/internal/services"
	"github.com/thomas-vilte/matereadme/internal/services/cost"
	"github.com/thomas-vilte/matereadme/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("error starting matereadme: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not resolve the home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, err
	}
	cfgApp.ApplyEnv()

	translations, err := i18n.NewTranslations(cfgApp.Language, filepath.Join(cfgApp.Dir(), "locales"))
	if err != nil {
		return nil, fmt.Errorf("error loading translations: %w", err)
	}

	historyDir := cfgApp.Dir()

	// A missing history only disables the usage log.
	var recorder generate.ActivityRecorder
	if manager, err := cost.NewManager(historyDir); err == nil {
		recorder = manager
	} else {
		log.Printf("warning: generation history disabled: %v", err)
	}

	serviceFactory := factory.NewReadmeServiceFactory(cfgApp)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("generate", generate.NewGenerateCommand(serviceFactory, recorder)); err != nil {
		return nil, fmt.Errorf("error registering 'generate': %w", err)
	}

	if err := registerCommand.Register("analyze", analyze.NewAnalyzeCommand(serviceFactory)); err != nil {
		return nil, fmt.Errorf("error registering 'analyze': %w", err)
	}

	if err := registerCommand.Register("repos", repos.NewReposCommand(serviceFactory)); err != nil {
		return nil, fmt.Errorf("error registering 'repos': %w", err)
	}

	if err := registerCommand.Register("config", config.NewConfigCommandFactory()); err != nil {
		return nil, fmt.Errorf("error registering 'config': %w", err)
	}

	historyProvider := func() (stats.HistoryReader, error) {
		return cost.NewManager(historyDir)
	}
	if err := registerCommand.Register("stats", stats.NewStatsCommand(historyProvider)); err != nil {
		return nil, fmt.Errorf("error registering 'stats': %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	return &cli.Command{
		Name:        "matereadme",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.Version,
		Description: translations.GetMessage("app_description", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flags.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flags.verbose", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: translations.GetMessage("flags.log_json", 0, nil),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(logger.Options{
				Debug:   cmd.Bool("debug"),
				Verbose: cmd.Bool("verbose"),
				JSON:    cmd.Bool("log-json"),
			})
			ctx, _ = logger.WithRequestID(ctx)
			logger.Debug(ctx, "matereadme started",
				"version", version.FullVersion(),
				"language", cfgApp.Language,
				"ai", cfgApp.AIConfig.ActiveAI)

			go func() {
				checker := services.NewVersionChecker(version.FullVersion(), translations)
				checker.CheckForUpdates(context.Background())
			}()
			return ctx, nil
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, nil
}
