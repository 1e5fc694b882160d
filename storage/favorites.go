package storage

import "slices"

func (s *Store) Favorites() ([]string, error) {
	favs, err := read[[]string](s, KeyFavorites)
	if favs == nil {
		favs = []string{}
	}
	return favs, err
}

func (s *Store) AddFavorite(toolKey string) error {
	return update(s, KeyFavorites, func(favs *[]string) error {
		if !slices.Contains(*favs, toolKey) {
			*favs = append(*favs, toolKey)
		}
		return nil
	})
}

func (s *Store) RemoveFavorite(toolKey string) error {
	return update(s, KeyFavorites, func(favs *[]string) error {
		*favs = slices.DeleteFunc(*favs, func(k string) bool { return k == toolKey })
		if *favs == nil {
			*favs = []string{}
		}
		return nil
	})
}

// ToggleFavorite returns whether the tool is a favourite afterwards
func (s *Store) ToggleFavorite(toolKey string) (bool, error) {
	var added bool
	err := update(s, KeyFavorites, func(favs *[]string) error {
		if i := slices.Index(*favs, toolKey); i >= 0 {
			*favs = slices.Delete(*favs, i, i+1)
			return nil
		}
		*favs = append(*favs, toolKey)
		added = true
		return nil
	})
	return added, err
}

func (s *Store) IsFavorite(toolKey string) (bool, error) {
	favs, err := s.Favorites()
	if err != nil {
		return false, err
	}
	return slices.Contains(favs, toolKey), nil
}
