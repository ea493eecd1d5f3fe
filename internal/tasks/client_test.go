package tasks

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecturas-app/lecturas/internal/database"
	"github.com/lecturas-app/lecturas/internal/database/books"
	"github.com/lecturas-app/lecturas/internal/database/settings"
	"github.com/lecturas-app/lecturas/internal/entities"
)

func TestNewClient(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	require.NotNil(t, client)

	// Verify tasks database was created
	tasksDBPath := filepath.Join(tmpDir, "test-tasks.db")
	_, err = os.Stat(tasksDBPath)
	assert.NoError(t, err, "tasks database should be created")

	err = client.Close()
	assert.NoError(t, err)
}

func TestClientStartStop(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go client.Start(ctx)

	// Give it time to start
	time.Sleep(50 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer stopCancel()

	success := client.Stop(stopCtx)
	assert.True(t, success, "stop should succeed gracefully")
}

// TestTask is a simple task for testing
type TestTask struct {
	Value string `json:"value"`
}

func (t TestTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "test_task",
		MaxAttempts: 1,
		Backoff:     time.Second,
		Timeout:     5 * time.Second,
	}
}

func TestTaskEnqueue(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	cfg := DefaultConfig()
	cfg.Workers = 1

	client, err := NewClient(dbPath, cfg)
	require.NoError(t, err)
	defer client.Close()

	executed := make(chan string, 1)
	queue := backlite.NewQueue(func(ctx context.Context, task TestTask) error {
		executed <- task.Value
		return nil
	})
	client.Register(queue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go client.Start(ctx)

	ids, err := client.Add(TestTask{Value: "hello"}).Save()
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	select {
	case val := <-executed:
		assert.Equal(t, "hello", val)
	case <-time.After(5 * time.Second):
		t.Fatal("task was not executed within timeout")
	}
}

func TestBackupExportTaskConfig(t *testing.T) {
	task := BackupExportTask{Dir: "./backups"}
	cfg := task.Config()

	assert.Equal(t, "backup_export", cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Backoff)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestBackupExportProcessor(t *testing.T) {
	setup := func(t *testing.T) (*books.Repository, *settings.Repository, func()) {
		t.Helper()
		dbPath := "./test_backup_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
		db, err := database.NewDatabase(dbPath)
		require.NoError(t, err)

		cleanup := func() {
			db.Close()
			os.Remove(dbPath)
		}
		return books.NewRepository(db), settings.NewRepository(db), cleanup
	}

	t.Run("writes dated snapshot and records success", func(t *testing.T) {
		repo, settingsRepo, cleanup := setup(t)
		defer cleanup()

		_, err := repo.Create(books.BookInput{Title: "Ficciones", Author: "Jorge Luis Borges", Genre: "Cuento"})
		require.NoError(t, err)

		dir := t.TempDir()
		processor := BackupExportProcessor(repo, settingsRepo)
		err = processor(context.Background(), BackupExportTask{Dir: dir})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		assert.Equal(t, "success", settingsRepo.GetValue(entities.SettingKeyBackupLastStatus))
		assert.Contains(t, settingsRepo.GetValue(entities.SettingKeyBackupLastMessage), entries[0].Name())
		assert.NotEmpty(t, settingsRepo.GetValue(entities.SettingKeyBackupLastAt))
	})

	t.Run("empty log records success without a file", func(t *testing.T) {
		repo, settingsRepo, cleanup := setup(t)
		defer cleanup()

		dir := t.TempDir()
		processor := BackupExportProcessor(repo, settingsRepo)
		err := processor(context.Background(), BackupExportTask{Dir: dir})
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)

		assert.Equal(t, "success", settingsRepo.GetValue(entities.SettingKeyBackupLastStatus))
		assert.Equal(t, "No books to export", settingsRepo.GetValue(entities.SettingKeyBackupLastMessage))
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Minute, cfg.RetryDelay)
	assert.Equal(t, 5*time.Minute, cfg.TaskTimeout)
	assert.Equal(t, 15*time.Minute, cfg.ReleaseAfter)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, 24*time.Hour, cfg.RetentionDuration)
}
