// Package entity defines the domain models for the plants feature.
package entity

import "time"

// Plant is a durable record of one completed identification. Keeping records
// is best-effort and orthogonal to the identification pipeline; the uploaded
// image itself is never persisted.
type Plant struct {
	ID                      uint   `gorm:"primaryKey"`
	BestMatchScientificName string `gorm:"size:255"`
	BestMatchCommonNames    string `gorm:"type:text"`
	// Results is the candidate list serialized as JSON, kept for the admin view.
	Results   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
