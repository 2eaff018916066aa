package models

import (
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lesson content kinds
const (
	ContentAudioFile = "audio_file"
	ContentTTS       = "tts"
)

// LessonContent is a tagged variant: a lesson is voiced either from a
// recorded audio file or from a text-to-speech script, never both.
type LessonContent struct {
	Kind      string `json:"kind"` // audio_file or tts
	AudioPath string `json:"audio_path,omitempty"`
	TTSScript string `json:"tts_script,omitempty"`
}

// Validate checks that exactly the field matching Kind is populated.
func (c LessonContent) Validate() error {
	switch c.Kind {
	case ContentAudioFile:
		if c.AudioPath == "" {
			return errors.New("audio_path is required for audio_file content")
		}
		if c.TTSScript != "" {
			return errors.New("tts_script must be empty for audio_file content")
		}
	case ContentTTS:
		if c.TTSScript == "" {
			return errors.New("tts_script is required for tts content")
		}
		if c.AudioPath != "" {
			return errors.New("audio_path must be empty for tts content")
		}
	default:
		return errors.New("content kind must be audio_file or tts")
	}
	return nil
}

// QuizQuestion is one multiple-choice question read out after a lesson
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"` // index into Options
}

// Validate checks the question is answerable over the phone keypad.
func (q QuizQuestion) Validate() error {
	if q.Question == "" {
		return errors.New("question text is required")
	}
	if len(q.Options) < 2 {
		return errors.New("at least two options are required")
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return errors.New("correct option index is out of range")
	}
	return nil
}

// Lesson is a static content unit played back during a call
type Lesson struct {
	gorm.Model
	Title           string                            `json:"title" gorm:"size:200;not null"`
	Subject         string                            `json:"subject" gorm:"size:50;index"` // math, english, science
	Level           string                            `json:"level" gorm:"size:20"`         // beginner, intermediate, advanced
	Language        string                            `json:"language" gorm:"size:10;default:'en'"`
	Description     string                            `json:"description" gorm:"type:text"`
	Content         datatypes.JSONType[LessonContent] `json:"content"`
	DurationSeconds int                               `json:"duration_seconds" gorm:"default:60"`
	QuizQuestions   datatypes.JSONSlice[QuizQuestion] `json:"quiz_questions"`
	IsActive        bool                              `json:"is_active" gorm:"default:true"`
	OrderIndex      int                               `json:"order_index" gorm:"default:0"` // sequencing within a subject
}
