package models

import "gorm.io/gorm"

// SystemSetting is a runtime-tunable key/value configuration entry,
// e.g. daily_reminder_time or max_attempts_per_quiz.
type SystemSetting struct {
	gorm.Model
	Key         string `json:"key" gorm:"size:100;uniqueIndex;not null"`
	Value       string `json:"value" gorm:"type:text"`
	Description string `json:"description" gorm:"size:500"`
}
