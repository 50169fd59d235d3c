package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type FormSession struct {
	ID              string           `json:"id"`
	Snapshot        BusinessSnapshot `json:"snapshot"`
	Submissions     int              `json:"submissions"`
	LastSubmittedAt *time.Time       `json:"last_submitted_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type CreateSessionResponse struct {
	SessionID string           `json:"session_id"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Snapshot  BusinessSnapshot `json:"snapshot"`
}

type SubmissionReceipt struct {
	SessionID   string    `json:"session_id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Message     string    `json:"message"`
	Payload     string    `json:"payload"`
}

type SessionClaims struct {
	SessionID string
	jwt.RegisteredClaims
}
