package models

import (
	"time"

	"gorm.io/gorm"
)

// Message types
const (
	SMSTypeProgress   = "progress"
	SMSTypeReminder   = "reminder"
	SMSTypeWelcome    = "welcome"
	SMSTypeQuizResult = "quiz_result"
)

// Delivery states
const (
	SMSStatusSent      = "sent"
	SMSStatusDelivered = "delivered"
	SMSStatusFailed    = "failed"
)

// ValidSMSType reports whether t is a known message type.
func ValidSMSType(t string) bool {
	switch t {
	case SMSTypeProgress, SMSTypeReminder, SMSTypeWelcome, SMSTypeQuizResult:
		return true
	}
	return false
}

// ValidSMSStatus reports whether s is a known delivery status.
func ValidSMSStatus(s string) bool {
	switch s {
	case SMSStatusSent, SMSStatusDelivered, SMSStatusFailed:
		return true
	}
	return false
}

// SMSLog records one outbound or inbound message and its provider outcome
type SMSLog struct {
	gorm.Model
	StudentID      *uint     `json:"student_id" gorm:"index"` // nil when the number is not registered
	PhoneNumber    string    `json:"phone_number" gorm:"size:15;index"`
	Message        string    `json:"message" gorm:"type:text"`
	MessageType    string    `json:"message_type" gorm:"size:50"` // progress, reminder, welcome, quiz_result
	SentAt         time.Time `json:"sent_at"`
	DeliveryStatus string    `json:"delivery_status" gorm:"size:20;default:'sent'"` // sent, delivered, failed
	Cost           string    `json:"cost" gorm:"size:10"`                           // as reported by the SMS provider
}
