package cost

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const historyFileName = "history.json"

// ActivityRecord is one README generation.
type ActivityRecord struct {
	Timestamp    time.Time `json:"timestamp"`
	Command      string    `json:"command"`
	Repository   string    `json:"repository"`
	Mode         string    `json:"mode"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	TokensInput  int       `json:"tokens_input"`
	TokensOutput int       `json:"tokens_output"`
	CostUSD      float64   `json:"cost_usd"`
	DurationMs   int64     `json:"duration_ms"`
	CacheHit     bool      `json:"cache_hit"`
}

// Manager keeps the generation history in a JSON file next to the config.
type Manager struct {
	historyPath string
}

func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating history directory: %w", err)
	}

	return &Manager{
		historyPath: filepath.Join(dir, historyFileName),
	}, nil
}

// SaveActivity saves an activity record
func (m *Manager) SaveActivity(record ActivityRecord) error {
	slog.Debug("saving activity record",
		"command", record.Command,
		"repository", record.Repository,
		"provider", record.Provider,
		"model", record.Model,
		"tokens_input", record.TokensInput,
		"tokens_output", record.TokensOutput,
		"cost_usd", record.CostUSD)

	records, err := m.loadHistory()
	if err != nil {
		records = []ActivityRecord{}
	}

	records = append(records, record)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		slog.Error("failed to serialize activity history",
			"error", err)
		return fmt.Errorf("error serializing history: %w", err)
	}

	if err := os.WriteFile(m.historyPath, data, 0644); err != nil {
		slog.Error("failed to write activity history",
			"path", m.historyPath,
			"error", err)
		return fmt.Errorf("error saving history: %w", err)
	}

	slog.Debug("activity record saved successfully",
		"total_records", len(records))

	return nil
}

// GetDailyTotal gets the total spent today
func (m *Manager) GetDailyTotal() (float64, error) {
	return m.totalFor("2006-01-02")
}

// GetMonthlyTotal gets the total spent this month
func (m *Manager) GetMonthlyTotal() (float64, error) {
	return m.totalFor("2006-01")
}

func (m *Manager) totalFor(layout string) (float64, error) {
	records, err := m.loadHistory()
	if err != nil {
		return 0, err
	}

	current := time.Now().Format(layout)
	var total float64
	for _, record := range records {
		if record.Timestamp.Format(layout) == current {
			total += record.CostUSD
		}
	}
	return total, nil
}

// GetHistory gets all records
func (m *Manager) GetHistory() ([]ActivityRecord, error) {
	return m.loadHistory()
}

func (m *Manager) loadHistory() ([]ActivityRecord, error) {
	data, err := os.ReadFile(m.historyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []ActivityRecord{}, nil
		}
		return nil, fmt.Errorf("error reading history: %w", err)
	}

	var records []ActivityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error deserializing history: %w", err)
	}

	return records, nil
}
