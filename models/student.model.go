package models

import (
	"time"

	"gorm.io/gorm"
)

// Student tracks a learner using the platform. Registration is keyed by
// phone number since callers have no other identity.
type Student struct {
	gorm.Model
	PhoneNumber           string    `json:"phone_number" gorm:"size:15;uniqueIndex;not null"`
	Name                  string    `json:"name" gorm:"size:100"`
	PreferredLanguage     string    `json:"preferred_language" gorm:"size:10;default:'en'"` // en, sw, etc
	LastActive            time.Time `json:"last_active"`
	TotalLessonsCompleted int       `json:"total_lessons_completed" gorm:"default:0"`
	AverageQuizScore      float64   `json:"average_quiz_score" gorm:"default:0"`
	IsActive              bool      `json:"is_active" gorm:"default:true"`
}
