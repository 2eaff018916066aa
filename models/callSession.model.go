package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Call session lifecycle states
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionAbandoned = "abandoned"
)

// QuizResult is one lesson's quiz outcome recorded against a call session
type QuizResult struct {
	Score    int `json:"score"`
	Attempts int `json:"attempts"`
}

// CallSession tracks one phone call from pickup to hangup
type CallSession struct {
	gorm.Model
	SessionID       string                                    `json:"session_id" gorm:"size:100;uniqueIndex;not null"`
	StudentID       *uint                                     `json:"student_id" gorm:"index"` // nil for unregistered callers
	PhoneNumber     string                                    `json:"phone_number" gorm:"size:15;index"`
	StartTime       time.Time                                 `json:"start_time"`
	EndTime         *time.Time                                `json:"end_time"`
	DurationSeconds *int                                      `json:"duration_seconds"`
	MenuPath        datatypes.JSONSlice[string]               `json:"menu_path"`        // e.g. ["main", "math", "addition"]
	LessonsAccessed datatypes.JSONSlice[uint]                 `json:"lessons_accessed"` // lesson IDs played during the call
	QuizResults     datatypes.JSONType[map[string]QuizResult] `json:"quiz_results"`     // keyed "lesson_<id>"
	SessionStatus   string                                    `json:"session_status" gorm:"size:20;default:'active'"` // active, completed, abandoned
}

// IsTerminal reports whether the session has been finalized.
func (s *CallSession) IsTerminal() bool {
	return s.SessionStatus == SessionCompleted || s.SessionStatus == SessionAbandoned
}

// CanTransitionTo reports whether the session may move to the given status.
// Only an active session can be finalized; terminal states never change.
func (s *CallSession) CanTransitionTo(status string) bool {
	if s.SessionStatus != SessionActive {
		return false
	}
	return status == SessionCompleted || status == SessionAbandoned
}
