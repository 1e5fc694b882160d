package storage

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MaxHistory is how many exports are remembered across all tools
const MaxHistory = 50

type ExportRecord struct {
	ID        string    `json:"id"`
	ToolKey   string    `json:"toolKey"`
	Format    string    `json:"format"`
	Data      string    `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Store) AddExport(toolKey, format, data string) (ExportRecord, error) {
	rec := ExportRecord{
		ID:        "export_" + uuid.NewString(),
		ToolKey:   toolKey,
		Format:    format,
		Data:      data,
		Timestamp: s.now().UTC(),
	}

	err := update(s, KeyExportHistory, func(history *[]ExportRecord) error {
		*history = append([]ExportRecord{rec}, *history...)
		if len(*history) > MaxHistory {
			*history = (*history)[:MaxHistory]
		}
		return nil
	})
	return rec, err
}

// ExportHistory returns exports newest first, optionally for one tool.
// limit <= 0 means no limit.
func (s *Store) ExportHistory(toolKey string, limit int) ([]ExportRecord, error) {
	history, err := read[[]ExportRecord](s, KeyExportHistory)
	if err != nil {
		return nil, err
	}
	if toolKey != "" {
		history = slices.DeleteFunc(history, func(r ExportRecord) bool { return r.ToolKey != toolKey })
	}

	slices.SortStableFunc(history, func(a, b ExportRecord) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	return history, nil
}

// ClearExportHistory removes one tool's exports, or everything when toolKey is empty
func (s *Store) ClearExportHistory(toolKey string) error {
	return update(s, KeyExportHistory, func(history *[]ExportRecord) error {
		if toolKey == "" {
			*history = []ExportRecord{}
			return nil
		}
		*history = slices.DeleteFunc(*history, func(r ExportRecord) bool { return r.ToolKey == toolKey })
		return nil
	})
}
