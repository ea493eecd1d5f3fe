package entities

import (
	"time"
)

// UserProfile is the reader's profile. Exactly one row exists after first
// initialization; it is updated in place and never deleted.
//
// Preferences are stored as a JSON object in the preferences column and
// materialized into the Preferences map by the profile repository.
type UserProfile struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Name           string            `gorm:"size:256" json:"name"`
	Email          string            `gorm:"size:255" json:"email,omitempty"`
	AvatarPath     string            `gorm:"size:1024" json:"avatar_path,omitempty"`
	RawPreferences string            `gorm:"column:preferences;type:text" json:"-"`
	Preferences    map[string]string `gorm:"-" json:"preferences"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}

// Default values seeded into the profile row on first run.
const (
	DefaultProfileName   = "Lector"
	DefaultProfileEmail  = "lector@example.com"
	DefaultProfileAvatar = "default_avatar.png"
)
