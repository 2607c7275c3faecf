package models

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionMeta contains metadata about one extraction run. Only run
// metadata is persisted — never the recovered keys themselves.
type ExtractionMeta struct {
	ID              string           `json:"id"`
	Host            string           `json:"host"`
	StartedAt       time.Time        `json:"started_at"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	Status          ExtractionStatus `json:"status"`
	TotalProfiles   int              `json:"total_profiles"`
	WithPassword    int              `json:"with_password"`
	WithoutPassword int              `json:"without_password"`
	FailedProfiles  int              `json:"failed_profiles"`
}

// NewExtraction creates extraction metadata for the given host with a fresh
// ID and pending status.
func NewExtraction(host string) *ExtractionMeta {
	return &ExtractionMeta{
		ID:        uuid.New().String(),
		Host:      host,
		StartedAt: time.Now(),
		Status:    StatusPending,
	}
}
