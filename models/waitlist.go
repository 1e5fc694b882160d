package models

import (
	"time"

	"github.com/google/uuid"
)

type WaitlistEmail struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Source    string    `json:"source" db:"source"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func NewWaitlistEmail(req EmailCaptureRequest) WaitlistEmail {
	source := req.Source
	if source == "" {
		source = "website"
	}
	return WaitlistEmail{
		ID:        uuid.New().String(),
		Email:     NormalizeEmail(req.Email),
		Source:    source,
		CreatedAt: time.Now(),
	}
}

// EmailCaptureRequest is shared by the waitlist and newsletter forms
type EmailCaptureRequest struct {
	Email  string `json:"email" validate:"required,email,max=254"`
	Source string `json:"source" validate:"max=64"`
}

type EmailCaptureResponse struct {
	Message           string `json:"message"`
	AlreadyRegistered bool   `json:"alreadyRegistered,omitempty"`
	Demo              bool   `json:"demo,omitempty"`
}
