package models

import "time"

type ExerciseVideo struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	YoutubeURL  string `gorm:"size:255;not null" json:"youtube_url"`

	// Nullable so uncategorized videos can exist.
	CategoryID *uint          `json:"category_id"`
	Category   *VideoCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`

	Difficulty string `gorm:"size:20" json:"difficulty"`

	// Comma-separated body part tags, matched with LIKE on listing.
	BodyParts string `gorm:"size:255" json:"body_parts"`

	DurationMin  int    `json:"duration_min"`
	ThumbnailURL string `gorm:"size:255" json:"thumbnail_url"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
