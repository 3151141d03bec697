package cron

import (
	"log"
	"time"

	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/application"
	"github.com/The-Tech-Tentacles/CampusHub-sub000/internal/config"
)

// StartCleanupTask prunes old audit logs once a day.
func StartCleanupTask(auditSvc *application.AuditService) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditSvc.CleanupOldLogs(config.AuditRetention); err != nil {
				log.Printf("audit cleanup failed: %v", err)
			}
		}
	}()
}
