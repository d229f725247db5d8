package config

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			printConfig(cmd.Root().Writer, t, cfg)
			return nil
		},
	}
}

// printConfig writes the effective configuration with every secret masked.
func printConfig(w io.Writer, t *i18n.Translations, cfg *config.Config) {
	title := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.FgHiBlack)

	_, _ = title.Fprintln(w, t.GetMessage("config.current", 0, nil))
	_, _ = fmt.Fprintln(w, "━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = dim.Fprintln(w, cfg.PathFile)

	line := func(label, value string) {
		_, _ = fmt.Fprintf(w, "%-22s %s\n", label+":", value)
	}

	line(t.GetMessage("config.language_label", 0, nil), cfg.Language)
	if cfg.GitHubToken == "" {
		line(t.GetMessage("config.github_token_label", 0, nil), t.GetMessage("config.not_set", 0, nil))
	} else {
		line(t.GetMessage("config.github_token_label", 0, nil), config.MaskSecret(cfg.GitHubToken))
	}
	line(t.GetMessage("config.active_ai_label", 0, nil), string(cfg.AIConfig.ActiveAI))

	names := make([]string, 0, len(cfg.AIProviders))
	for name := range cfg.AIProviders {
		names = append(names, name)
	}
	sort.Strings(names)

	_, _ = fmt.Fprintln(w)
	_, _ = title.Fprintln(w, t.GetMessage("config.providers_title", 0, nil))
	for _, name := range names {
		p := cfg.AIProviders[name]
		key := t.GetMessage("config.not_set", 0, nil)
		if p.APIKey != "" {
			key = config.MaskSecret(p.APIKey)
		}
		_, _ = fmt.Fprintf(w, "- %s: %s=%s %s=%s %s=%s\n", name,
			"model", p.Model,
			"enhanced_model", p.EnhancedModel,
			"api_key", key)
	}

	_, _ = fmt.Fprintln(w)
	_, _ = title.Fprintln(w, t.GetMessage("config.analysis_title", 0, nil))
	line("max_files", fmt.Sprintf("%d", cfg.Analysis.MaxFiles))
	line("max_file_size", fmt.Sprintf("%d", cfg.Analysis.MaxFileSize))
	line("concurrency", fmt.Sprintf("%d", cfg.Analysis.Concurrency))
	line("http_timeout_seconds", fmt.Sprintf("%d", cfg.HTTPTimeoutSeconds))

	_, _ = fmt.Fprintln(w)
	_, _ = title.Fprintln(w, t.GetMessage("config.generation_title", 0, nil))
	line("temperature", fmt.Sprintf("%.2f", cfg.Generation.Temperature))
	line("top_p", fmt.Sprintf("%.2f", cfg.Generation.TopP))
	line("max_tokens", fmt.Sprintf("%d", cfg.Generation.MaxTokens))
	line("enhanced_max_tokens", fmt.Sprintf("%d", cfg.Generation.EnhancedMaxTokens))
	line("cache_ttl_hours", fmt.Sprintf("%d", cfg.Generation.CacheTTLHours))
}
