package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lecturas-app/lecturas/internal/database/settings"
	"github.com/lecturas-app/lecturas/internal/entities"
	"github.com/lecturas-app/lecturas/internal/scheduler"
)

// BackupController reports on and triggers the scheduled CSV backups.
type BackupController struct {
	settings  *settings.Repository
	scheduler *scheduler.BackupScheduler
}

func NewBackupController(settingsRepo *settings.Repository, sched *scheduler.BackupScheduler) *BackupController {
	return &BackupController{settings: settingsRepo, scheduler: sched}
}

// Status returns the last backup outcome and the next scheduled run.
// GET /api/backup
func (bc *BackupController) Status(c *gin.Context) {
	status := gin.H{
		"last_at":      bc.settings.GetValue(entities.SettingKeyBackupLastAt),
		"last_status":  bc.settings.GetValue(entities.SettingKeyBackupLastStatus),
		"last_message": bc.settings.GetValue(entities.SettingKeyBackupLastMessage),
		"scheduled":    false,
	}
	if bc.scheduler != nil && bc.scheduler.IsRunning() {
		status["scheduled"] = true
		if next := bc.scheduler.NextRun(); next != nil {
			status["next_run"] = next
		}
	}
	c.JSON(http.StatusOK, status)
}

// Run triggers an immediate backup export.
// POST /api/backup/run
func (bc *BackupController) Run(c *gin.Context) {
	if bc.scheduler == nil {
		respondBadRequest(c, "backups are not configured")
		return
	}
	bc.scheduler.RunNow()
	c.JSON(http.StatusAccepted, SuccessResponse{Message: "Backup started"})
}
