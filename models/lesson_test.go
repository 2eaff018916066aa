package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLessonContentValidate(t *testing.T) {
	tests := []struct {
		name    string
		content LessonContent
		wantErr bool
	}{
		{
			name:    "valid tts",
			content: LessonContent{Kind: ContentTTS, TTSScript: "Two plus two equals four."},
			wantErr: false,
		},
		{
			name:    "valid audio file",
			content: LessonContent{Kind: ContentAudioFile, AudioPath: "s3://lessons/math-01.mp3"},
			wantErr: false,
		},
		{
			name:    "tts without script",
			content: LessonContent{Kind: ContentTTS},
			wantErr: true,
		},
		{
			name:    "audio without path",
			content: LessonContent{Kind: ContentAudioFile},
			wantErr: true,
		},
		{
			name:    "both fields set",
			content: LessonContent{Kind: ContentTTS, TTSScript: "text", AudioPath: "s3://x.mp3"},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			content: LessonContent{Kind: "video", AudioPath: "s3://x.mp4"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuizQuestionValidate(t *testing.T) {
	valid := QuizQuestion{
		Question: "What is 2+2?",
		Options:  []string{"3", "4", "5"},
		Correct:  1,
	}
	assert.NoError(t, valid.Validate())

	noText := valid
	noText.Question = ""
	assert.Error(t, noText.Validate())

	oneOption := valid
	oneOption.Options = []string{"4"}
	assert.Error(t, oneOption.Validate())

	outOfRange := valid
	outOfRange.Correct = 3
	assert.Error(t, outOfRange.Validate())

	negative := valid
	negative.Correct = -1
	assert.Error(t, negative.Validate())
}
