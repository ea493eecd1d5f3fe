package tasks

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/database/settings"
	"github.com/lecturas-app/lecturas/internal/entities"
	"github.com/lecturas-app/lecturas/internal/exporters"
)

// BackupExportTask writes a dated CSV snapshot of the full reading log to a
// backup directory.
type BackupExportTask struct {
	Dir string `json:"dir"`
}

// Config returns the queue configuration for backup export tasks.
func (t BackupExportTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "backup_export",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// BackupExportProcessor creates a processor function for BackupExportTask.
// The snapshot covers the entire log (no filters); the outcome is recorded
// in the settings table for the backup status endpoint.
func BackupExportProcessor(repo *books.Repository, settingsRepo *settings.Repository) backlite.QueueProcessor[BackupExportTask] {
	return func(ctx context.Context, task BackupExportTask) error {
		if err := os.MkdirAll(task.Dir, 0755); err != nil {
			return recordBackupFailure(settingsRepo, fmt.Errorf("create backup dir: %w", err))
		}

		path := filepath.Join(task.Dir, exporters.DefaultFileName(time.Now()))
		written, err := repo.ExportCSV(path, books.Filter{})
		if err != nil {
			return recordBackupFailure(settingsRepo, fmt.Errorf("backup export: %w", err))
		}

		message := "No books to export"
		if written {
			message = fmt.Sprintf("Snapshot written to %s", path)
		}
		log.Printf("[TASK] Backup export: %s", message)
		recordBackupStatus(settingsRepo, "success", message)
		return nil
	}
}

// NewBackupExportQueue creates a backlite queue for backup export tasks.
func NewBackupExportQueue(repo *books.Repository, settingsRepo *settings.Repository) backlite.Queue {
	return backlite.NewQueue(BackupExportProcessor(repo, settingsRepo))
}

func recordBackupFailure(settingsRepo *settings.Repository, err error) error {
	recordBackupStatus(settingsRepo, "failed", err.Error())
	return err
}

func recordBackupStatus(settingsRepo *settings.Repository, status, message string) {
	if settingsRepo == nil {
		return
	}
	_ = settingsRepo.SetSetting(entities.SettingKeyBackupLastAt, time.Now().Format(time.RFC3339))
	_ = settingsRepo.SetSetting(entities.SettingKeyBackupLastStatus, status)
	_ = settingsRepo.SetSetting(entities.SettingKeyBackupLastMessage, message)
}
