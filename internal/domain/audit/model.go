package audit

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one mutating action against an application or user,
// with JSON snapshots of the record before and after.
type AuditLog struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	UserID       uint           `gorm:"index" json:"user_id"`
	IP           string         `gorm:"size:64" json:"ip"`
	UserAgent    string         `gorm:"size:255" json:"user_agent"`
	Action       string         `gorm:"size:50;index" json:"action"`
	ResourceType string         `gorm:"size:50;index" json:"resource_type"`
	ResourceID   string         `gorm:"size:50" json:"resource_id"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	Description  string         `gorm:"size:500" json:"description"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
}
