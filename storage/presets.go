package storage

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

type Preset struct {
	ID        string          `json:"id"`
	ToolKey   string          `json:"toolKey"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// Presets lists saved presets, optionally only those for toolKey
func (s *Store) Presets(toolKey string) ([]Preset, error) {
	all, err := read[[]Preset](s, KeyPresets)
	if err != nil {
		return nil, err
	}
	if toolKey == "" {
		return all, nil
	}
	return slices.DeleteFunc(all, func(p Preset) bool { return p.ToolKey != toolKey }), nil
}

func (s *Store) Preset(id string) (Preset, error) {
	all, err := s.Presets("")
	if err != nil {
		return Preset{}, err
	}
	for _, p := range all {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, ErrPresetNotFound
}

func (s *Store) SavePreset(toolKey, name string, data json.RawMessage) (Preset, error) {
	now := s.now().UTC()
	p := Preset{
		ID:        "preset_" + uuid.NewString(),
		ToolKey:   toolKey,
		Name:      name,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := update(s, KeyPresets, func(all *[]Preset) error {
		*all = append(*all, p)
		return nil
	})
	return p, err
}

// PresetUpdate carries the fields to change; nil fields are kept
type PresetUpdate struct {
	Name *string
	Data json.RawMessage
}

func (s *Store) UpdatePreset(id string, upd PresetUpdate) (Preset, error) {
	var out Preset
	err := update(s, KeyPresets, func(all *[]Preset) error {
		i := slices.IndexFunc(*all, func(p Preset) bool { return p.ID == id })
		if i < 0 {
			return ErrPresetNotFound
		}

		p := &(*all)[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Data != nil {
			p.Data = upd.Data
		}
		p.UpdatedAt = s.now().UTC()
		out = *p
		return nil
	})
	return out, err
}

// DeletePreset is a no-op for unknown ids
func (s *Store) DeletePreset(id string) error {
	return update(s, KeyPresets, func(all *[]Preset) error {
		*all = slices.DeleteFunc(*all, func(p Preset) bool { return p.ID == id })
		return nil
	})
}
