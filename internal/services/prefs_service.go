package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/grihom/grihom-api/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// getPref reads one preference value for a user, unmarshaling into out.
// A missing row leaves out untouched so the caller's default survives.
func (s *Store) getPref(userID, key string, out interface{}) error {
	var pref models.UserPreference
	err := s.DB.First(&pref, "user_id = ? AND pref_key = ?", userID, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if len(pref.Value) == 0 {
		return nil
	}
	return json.Unmarshal(pref.Value, out)
}

// setPref upserts one preference value for a user.
func (s *Store) setPref(userID, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode preference %q: %w", key, err)
	}
	pref := models.UserPreference{
		UserID:  userID,
		PrefKey: key,
		Value:   datatypes.JSON(raw),
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "pref_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

// Preferences returns the user's miscellaneous preferences object.
func (s *Store) Preferences(ctx context.Context, userID string) (map[string]interface{}, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	prefs := map[string]interface{}{}
	if err := s.getPref(userID, models.PrefKeyPreferences, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// SetPreferences replaces the user's preferences object.
func (s *Store) SetPreferences(ctx context.Context, userID string, prefs map[string]interface{}) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.setPref(userID, models.PrefKeyPreferences, prefs)
}

// Theme returns the stored UI theme, empty when unset.
func (s *Store) Theme(ctx context.Context, userID string) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	var theme string
	if err := s.getPref(userID, models.PrefKeyTheme, &theme); err != nil {
		return "", err
	}
	return theme, nil
}

// SetTheme stores the UI theme (light/dark).
func (s *Store) SetTheme(ctx context.Context, userID, theme string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.setPref(userID, models.PrefKeyTheme, theme)
}

// SetPlan replaces the whole planned-improvement id list, the way the
// original persisted it as a single array.
func (s *Store) SetPlan(ctx context.Context, userID string, ids []int64) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.setPref(userID, models.PrefKeyPlan, ids)
}

// SetFavorites replaces the whole favorite-idea id list.
func (s *Store) SetFavorites(ctx context.Context, userID string, ids []int64) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.setPref(userID, models.PrefKeyFavorites, ids)
}

// Plan returns the user's ordered planned-improvement id list.
func (s *Store) Plan(ctx context.Context, userID string) ([]int64, error) {
	return s.idList(ctx, userID, models.PrefKeyPlan)
}

// AddToPlan appends an improvement id to the plan if not already present.
func (s *Store) AddToPlan(ctx context.Context, userID string, id int64) ([]int64, error) {
	return s.addToIDList(ctx, userID, models.PrefKeyPlan, id)
}

// RemoveFromPlan removes an improvement id from the plan.
func (s *Store) RemoveFromPlan(ctx context.Context, userID string, id int64) ([]int64, error) {
	return s.removeFromIDList(ctx, userID, models.PrefKeyPlan, id)
}

// Favorites returns the user's favorite idea ids.
func (s *Store) Favorites(ctx context.Context, userID string) ([]int64, error) {
	return s.idList(ctx, userID, models.PrefKeyFavorites)
}

// AddFavorite marks an idea as favorite if not already marked.
func (s *Store) AddFavorite(ctx context.Context, userID string, id int64) ([]int64, error) {
	return s.addToIDList(ctx, userID, models.PrefKeyFavorites, id)
}

// RemoveFavorite unmarks a favorite idea.
func (s *Store) RemoveFavorite(ctx context.Context, userID string, id int64) ([]int64, error) {
	return s.removeFromIDList(ctx, userID, models.PrefKeyFavorites, id)
}

func (s *Store) idList(ctx context.Context, userID, key string) ([]int64, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	ids := []int64{}
	if err := s.getPref(userID, key, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) addToIDList(ctx context.Context, userID, key string, id int64) ([]int64, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	ids := []int64{}
	if err := s.getPref(userID, key, &ids); err != nil {
		return nil, err
	}
	for _, existing := range ids {
		if existing == id {
			return ids, nil
		}
	}
	ids = append(ids, id)
	if err := s.setPref(userID, key, ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *Store) removeFromIDList(ctx context.Context, userID, key string, id int64) ([]int64, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	ids := []int64{}
	if err := s.getPref(userID, key, &ids); err != nil {
		return nil, err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	if err := s.setPref(userID, key, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
