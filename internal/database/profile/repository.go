// Package profile provides database operations for the singleton user
// profile.
//
// # Usage
//
//	repo := profile.NewRepository(db)
//	p, err := repo.Get()
package profile

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/entities"
)

// ErrMissingName is returned when an update carries an empty name.
var ErrMissingName = errors.New("profile name is required")

// Repository handles all user-profile database operations.
type Repository struct {
	db *database.Database
}

// NewRepository creates a new profile repository.
func NewRepository(db *database.Database) *Repository {
	return &Repository{db: db}
}

// Get returns the single profile row with preferences decoded into a map.
// Fails when no row exists, which cannot happen after initialization.
func (r *Repository) Get() (*entities.UserProfile, error) {
	var p entities.UserProfile
	if err := r.db.DB.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile row missing, database not initialized: %w", err)
		}
		return nil, err
	}

	p.Preferences = map[string]string{}
	if p.RawPreferences != "" {
		if err := json.Unmarshal([]byte(p.RawPreferences), &p.Preferences); err != nil {
			return nil, fmt.Errorf("failed to decode preferences: %w", err)
		}
	}
	return &p, nil
}

// Update replaces every field of the stored profile with the given record
// and refreshes its update timestamp. Callers merge partial input over the
// current row before calling; the repository expects a complete record.
func (r *Repository) Update(p *entities.UserProfile) error {
	if p.Name == "" {
		return ErrMissingName
	}

	raw, err := json.Marshal(preferencesOrEmpty(p.Preferences))
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	return r.db.DB.Model(&entities.UserProfile{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":        p.Name,
		"email":       p.Email,
		"avatar_path": p.AvatarPath,
		"preferences": string(raw),
	}).Error
}

func preferencesOrEmpty(prefs map[string]string) map[string]string {
	if prefs == nil {
		return map[string]string{}
	}
	return prefs
}
