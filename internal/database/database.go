package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lecturas-app/lecturas/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (creating if needed) the reading-log database, migrates
// the schema and seeds the default user profile. Safe to call on every
// startup: migration is additive and seeding only inserts when the
// user_profile table is empty.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.UserProfile{},
		&entities.Setting{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := database.seedDefaultProfile(); err != nil {
		return nil, fmt.Errorf("failed to seed default profile: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// seedDefaultProfile inserts the default profile row when none exists.
// Counting first keeps repeated startups from ever creating a second row.
func (d *Database) seedDefaultProfile() error {
	var count int64
	if err := d.DB.Model(&entities.UserProfile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	profile := entities.UserProfile{
		Name:           entities.DefaultProfileName,
		Email:          entities.DefaultProfileEmail,
		AvatarPath:     entities.DefaultProfileAvatar,
		RawPreferences: "{}",
	}
	if err := d.DB.Create(&profile).Error; err != nil {
		return err
	}
	log.Printf("Created default profile %q", profile.Name)
	return nil
}

// Exec runs a single parameterized statement that returns no rows. Each call
// is its own transaction scope; nothing spans multiple calls.
func (d *Database) Exec(stmt string, args ...any) error {
	return d.DB.Exec(stmt, args...).Error
}

// Query runs a single parameterized statement and returns every resulting
// row as an ordered slice of column values. Value types are whatever the
// SQLite driver yields (int64, float64, string, []byte, nil).
func (d *Database) Query(stmt string, args ...any) ([][]any, error) {
	rows, err := d.DB.Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var results [][]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		results = append(results, values)
	}
	return results, rows.Err()
}
