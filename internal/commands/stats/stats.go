package stats

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/thomas-vilte/matereadme/internal/config"
	"github.com/thomas-vilte/matereadme/internal/i18n"
	"github.com/thomas-vilte/matereadme/internal/services/cost"
	"github.com/urfave/cli/v3"
)

const separator = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// HistoryReader exposes the recorded README generations.
type HistoryReader interface {
	GetHistory() ([]cost.ActivityRecord, error)
}

type HistoryReaderFactory func() (HistoryReader, error)

type StatsCommand struct {
	factory HistoryReaderFactory
	now     func() time.Time
}

func NewStatsCommand(factory HistoryReaderFactory) *StatsCommand {
	return &StatsCommand{factory: factory, now: time.Now}
}

func (c *StatsCommand) CreateCommand(t *i18n.Translations, _ *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Aliases: []string{"cost"},
		Usage:   t.GetMessage("stats.usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "monthly",
				Aliases: []string{"m"},
				Usage:   t.GetMessage("stats.monthly_flag", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			history, err := c.factory()
			if err != nil {
				return fmt.Errorf(t.GetMessage("stats.error_init", 0, nil)+": %w", err)
			}

			records, err := history.GetHistory()
			if err != nil {
				return fmt.Errorf(t.GetMessage("stats.error_read", 0, nil)+": %w", err)
			}

			if cmd.Bool("monthly") {
				c.showMonthlyStats(cmd.Root().Writer, records, t)
				return nil
			}
			c.showDailyStats(cmd.Root().Writer, records, t)
			return nil
		},
	}
}

func (c *StatsCommand) showDailyStats(w io.Writer, records []cost.ActivityRecord, t *i18n.Translations) {
	today := c.now().Format("2006-01-02")
	var todayRecords []cost.ActivityRecord
	var total float64
	for _, r := range records {
		if r.Timestamp.Format("2006-01-02") == today {
			todayRecords = append(todayRecords, r)
			total += r.CostUSD
		}
	}

	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)
	dim := color.New(color.FgHiBlack)

	_, _ = cyan.Fprintf(w, "\n📊 %s\n", t.GetMessage("stats.daily_title", 0, nil))
	_, _ = fmt.Fprintln(w, separator)
	if len(todayRecords) == 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n\n", t.GetMessage("stats.no_activity", 0, nil))
		return
	}
	green := color.New(color.FgGreen)
	for _, record := range todayRecords {
		cacheIndicator := ""
		if record.CacheHit {
			cacheIndicator = green.Sprint(" [CACHE]")
		}
		_, _ = fmt.Fprintf(w, "%s - %s %s: %s %s%s\n",
			record.Timestamp.Format("15:04"),
			record.Repository,
			dim.Sprintf("(%s, %s)", record.Mode, record.Model),
			yellow.Sprintf("$%.4f", record.CostUSD),
			dim.Sprintf("%d/%d tokens", record.TokensInput, record.TokensOutput),
			cacheIndicator,
		)
	}
	_, _ = fmt.Fprintln(w, separator)
	_, _ = cyan.Fprintf(w, "%s: ", t.GetMessage("stats.total_today", 0, nil))
	_, _ = yellow.Fprintf(w, "$%.4f USD\n\n", total)
}

func (c *StatsCommand) showMonthlyStats(w io.Writer, records []cost.ActivityRecord, t *i18n.Translations) {
	now := c.now()
	currentMonth := now.Format("2006-01")
	dailyTotals := make(map[string]float64)
	dailyCounts := make(map[string]int)
	var total float64
	for _, r := range records {
		if r.Timestamp.Format("2006-01") != currentMonth {
			continue
		}
		day := r.Timestamp.Format("2006-01-02")
		dailyTotals[day] += r.CostUSD
		dailyCounts[day]++
		total += r.CostUSD
	}

	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	_, _ = cyan.Fprintf(w, "\n📅 %s\n", t.GetMessage("stats.monthly_title", 0, map[string]interface{}{
		"Month": now.Format("January 2006"),
	}))
	_, _ = fmt.Fprintln(w, separator)
	if len(dailyTotals) == 0 {
		_, _ = fmt.Fprintf(w, "\n%s\n\n", t.GetMessage("stats.no_activity", 0, nil))
		return
	}

	days := make([]string, 0, len(dailyTotals))
	for day := range dailyTotals {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		_, _ = fmt.Fprintf(w, "%s: %s  %s\n", day,
			yellow.Sprintf("$%.4f", dailyTotals[day]),
			t.GetMessage("stats.generations", dailyCounts[day], map[string]interface{}{"Count": dailyCounts[day]}))
	}
	_, _ = fmt.Fprintln(w, separator)
	_, _ = cyan.Fprintf(w, "%s: ", t.GetMessage("stats.total_month", 0, nil))
	_, _ = yellow.Fprintf(w, "$%.4f USD\n\n", total)
}
