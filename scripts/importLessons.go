package main

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"ivrtutor/config"
	"ivrtutor/database"
	"ivrtutor/models"

	"gorm.io/datatypes"
)

// Imports lesson content from Lessons.csv. Expected headers:
// title, subject, level, language, description, kind, audio_path,
// tts_script, duration, order_index, quiz_questions (JSON array).
func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	// Open CSV file
	file, err := os.Open("Lessons.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file is empty or has only headers")
	}

	// Skip header row
	header := records[0]
	log.Printf("CSV Headers: %v", header)
	log.Printf("Total rows to import: %d", len(records)-1)

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range header {
		headerIndex[strings.TrimSpace(h)] = i
	}

	inserted := 0
	updated := 0
	skipped := 0

	for i, row := range records[1:] {
		title := getField(row, headerIndex, "title")
		subject := getField(row, headerIndex, "subject")
		if title == "" || subject == "" {
			skipped++
			continue
		}

		content := models.LessonContent{
			Kind:      getField(row, headerIndex, "kind"),
			AudioPath: getField(row, headerIndex, "audio_path"),
			TTSScript: getField(row, headerIndex, "tts_script"),
		}
		if content.Kind == "" {
			content.Kind = models.ContentTTS
		}
		if err := content.Validate(); err != nil {
			log.Printf("Row %d (%s): invalid content: %v", i+1, title, err)
			skipped++
			continue
		}

		questions := parseQuestions(getField(row, headerIndex, "quiz_questions"))
		valid := true
		for _, q := range questions {
			if err := q.Validate(); err != nil {
				log.Printf("Row %d (%s): invalid quiz question: %v", i+1, title, err)
				valid = false
				break
			}
		}
		if !valid {
			skipped++
			continue
		}

		duration := parseInt(getField(row, headerIndex, "duration"))
		if duration == 0 {
			duration = 60
		}
		language := getField(row, headerIndex, "language")
		if language == "" {
			language = config.AppConfig.DefaultLanguage
		}

		lesson := models.Lesson{
			Title:           title,
			Subject:         subject,
			Level:           getField(row, headerIndex, "level"),
			Language:        language,
			Description:     getField(row, headerIndex, "description"),
			Content:         datatypes.NewJSONType(content),
			DurationSeconds: duration,
			QuizQuestions:   questions,
			IsActive:        true,
			OrderIndex:      parseInt(getField(row, headerIndex, "order_index")),
		}

		// Lessons are keyed by title within a subject for re-imports
		var existing models.Lesson
		result := database.Database.Db.Where("title = ? AND subject = ?", lesson.Title, lesson.Subject).First(&existing)

		if result.Error != nil {
			if err := database.Database.Db.Create(&lesson).Error; err != nil {
				log.Printf("Error inserting lesson %s: %v", lesson.Title, err)
				continue
			}
			inserted++
		} else {
			existing.Level = lesson.Level
			existing.Language = lesson.Language
			existing.Description = lesson.Description
			existing.Content = lesson.Content
			existing.DurationSeconds = lesson.DurationSeconds
			existing.QuizQuestions = lesson.QuizQuestions
			existing.OrderIndex = lesson.OrderIndex

			if err := database.Database.Db.Save(&existing).Error; err != nil {
				log.Printf("Error updating lesson %s: %v", lesson.Title, err)
				continue
			}
			updated++
		}
	}

	log.Printf("=== Import Complete ===")
	log.Printf("Inserted: %d", inserted)
	log.Printf("Updated: %d", updated)
	log.Printf("Skipped: %d", skipped)
	log.Printf("Total processed: %d", inserted+updated+skipped)
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// parseInt converts string to int
func parseInt(s string) int {
	if s == "" {
		return 0
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return val
}

// parseQuestions decodes the quiz_questions JSON column
func parseQuestions(s string) []models.QuizQuestion {
	if s == "" {
		return nil
	}
	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(s), &questions); err != nil {
		log.Printf("Failed to parse quiz questions: %v", err)
		return nil
	}
	return questions
}
