package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/models"
)

// PrintTokenUsage prints the token counts of a completion. costUSD is the
// estimate for the model and is omitted when unknown.
func PrintTokenUsage(usage *models.TokenUsage, costUSD float64, t *i18n.Translations) {
	if usage == nil {
		return
	}
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	_, _ = cyan.Fprint(Out, "📊 ")
	_, _ = fmt.Fprintf(Out, "%s: ", t.GetMessage("ui.token_usage", 0, nil))
	_, _ = fmt.Fprintf(Out, "%s %d | ", t.GetMessage("ui.input", 0, nil), usage.InputTokens)
	_, _ = fmt.Fprintf(Out, "%s %d | ", t.GetMessage("ui.output", 0, nil), usage.OutputTokens)
	_, _ = fmt.Fprintf(Out, "%s %d\n", t.GetMessage("ui.total", 0, nil), usage.TotalTokens)
	if usage.Model != "" {
		_, _ = fmt.Fprintf(Out, "🤖 %s: %s\n", t.GetMessage("ui.model", 0, nil), usage.Model)
	}
	if costUSD > 0 {
		_, _ = yellow.Fprint(Out, "💰 ")
		_, _ = fmt.Fprintf(Out, "%s: ", t.GetMessage("ui.cost", 0, nil))
		_, _ = yellow.Fprintf(Out, "$%.4f USD\n", costUSD)
	}
	if usage.DurationMs > 0 {
		_, _ = fmt.Fprintf(Out, "⏱️  %s: %dms\n", t.GetMessage("ui.duration", 0, nil), usage.DurationMs)
	}
}
