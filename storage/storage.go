// Package storage keeps a user's favourites, saved presets and export history
// in a single JSON file, keyed the same way the browser tools key local storage.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	KeyFavorites     = "nine_hub_favorites"
	KeyPresets       = "nine_hub_presets"
	KeyExportHistory = "nine_hub_export_history"
	KeyTheme         = "nine_hub_theme"
)

var ErrPresetNotFound = errors.New("preset not found")

type Store struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
	now    func() time.Time
}

func New(path string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{path: path, logger: logger, now: time.Now}
}

// load reads every key. A missing file is an empty store.
func (s *Store) load() (map[string]json.RawMessage, error) {
	data := map[string]json.RawMessage{}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	if len(raw) == 0 {
		return data, nil
	}

	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Warn("store file is corrupt, starting empty", zap.String("path", s.path), zap.Error(err))
		return map[string]json.RawMessage{}, nil
	}
	return data, nil
}

func (s *Store) save(data map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// get decodes key into v. Undecodable values leave v untouched and are only logged.
func (s *Store) get(data map[string]json.RawMessage, key string, v any) {
	raw, ok := data[key]
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Warn("ignoring corrupt store entry", zap.String("key", key), zap.Error(err))
	}
}

func set(data map[string]json.RawMessage, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	data[key] = raw
	return nil
}

// update runs fn against the decoded value of key and persists the result
func update[T any](s *Store, key string, fn func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	var v T
	s.get(data, key, &v)
	if err := fn(&v); err != nil {
		return err
	}
	if err := set(data, key, v); err != nil {
		return err
	}
	return s.save(data)
}

func read[T any](s *Store, key string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var v T
	data, err := s.load()
	if err != nil {
		return v, err
	}
	s.get(data, key, &v)
	return v, nil
}

type Usage struct {
	Favorites int `json:"favorites"`
	Presets   int `json:"presets"`
	Exports   int `json:"exports"`
}

func (s *Store) Usage() (Usage, error) {
	favs, err := s.Favorites()
	if err != nil {
		return Usage{}, err
	}
	presets, err := s.Presets("")
	if err != nil {
		return Usage{}, err
	}
	history, err := s.ExportHistory("", 0)
	if err != nil {
		return Usage{}, err
	}
	return Usage{Favorites: len(favs), Presets: len(presets), Exports: len(history)}, nil
}

// ClearAll drops every key except the theme preference
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	for key := range data {
		if key != KeyTheme {
			delete(data, key)
		}
	}
	return s.save(data)
}

func (s *Store) Theme() (string, error) {
	return read[string](s, KeyTheme)
}

func (s *Store) SetTheme(theme string) error {
	return update(s, KeyTheme, func(t *string) error {
		*t = theme
		return nil
	})
}
