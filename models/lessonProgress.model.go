package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson progress states
const (
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
	ProgressFailed     = "failed"
)

// ValidQuizScore reports whether a percentage score is in range.
func ValidQuizScore(score int) bool {
	return score >= 0 && score <= 100
}

// LessonProgress is one student's attempt record against a lesson
type LessonProgress struct {
	gorm.Model
	StudentID        uint                     `json:"student_id" gorm:"index;not null"`
	LessonID         uint                     `json:"lesson_id" gorm:"index;not null"`
	SessionID        string                   `json:"session_id" gorm:"size:100"` // CallSession.SessionID that produced this attempt
	StartedAt        time.Time                `json:"started_at"`
	CompletedAt      *time.Time               `json:"completed_at"`
	QuizScore        *int                     `json:"quiz_score"` // percentage 0-100
	QuizAnswers      datatypes.JSONSlice[int] `json:"quiz_answers"`
	Attempts         int                      `json:"attempts" gorm:"default:1"`
	TimeSpentSeconds int                      `json:"time_spent_seconds" gorm:"default:0"`
	Status           string                   `json:"status" gorm:"size:20;default:'in_progress'"` // in_progress, completed, failed
}

// IsTerminalStatus reports whether the attempt has finished, either way.
func (p *LessonProgress) IsTerminalStatus() bool {
	return p.Status == ProgressCompleted || p.Status == ProgressFailed
}
