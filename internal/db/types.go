package db

import (
	"time"

	"github.com/google/uuid"
)

// Resume status values
const (
	StatusPending   = "pending"
	StatusOptimized = "optimized"
	StatusFailed    = "failed"
)

// Resume represents a stored resume and, once optimized, its rewritten text
type Resume struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	OriginalText   string     `json:"original_text"`
	OptimizedText  *string    `json:"optimized_text,omitempty"`
	JobDescription *string    `json:"job_description,omitempty"`
	Status         string     `json:"status"`
	KeywordsAdded  int        `json:"keywords_added"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// User represents a registered account
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
