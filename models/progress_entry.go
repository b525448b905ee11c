package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressEntry records one calendar day's activity for one user. Date is
// truncated to local midnight; at most one entry exists per (user, date) and
// a second submit for the same date overwrites the previous metrics.
type ProgressEntry struct {
	gorm.Model
	UserID  uint      `gorm:"not null;uniqueIndex:uidx_progress_user_date"`
	User    User      `gorm:"constraint:OnDelete:CASCADE"`
	Date    time.Time `gorm:"type:date;not null;uniqueIndex:uidx_progress_user_date"`
	Steps   int       `gorm:"default:0"`
	Water   int       `gorm:"default:0"`
	Workout int       `gorm:"default:0"`
}
