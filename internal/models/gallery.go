package models

import "time"

// GalleryImage is an uploaded photo shown on the public gallery page.
type GalleryImage struct {
	ID         string    `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Category   string    `db:"category" json:"category"`
	ImageURL   string    `db:"image_url" json:"imageUrl"`
	Filename   string    `db:"filename" json:"filename"`
	UploadedAt time.Time `db:"uploaded_at" json:"uploadedAt"`
}
