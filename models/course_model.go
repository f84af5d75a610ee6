package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseStatus mirrors the legacy numeric column: 0 approved, 1 pending, 2 cancelled.
type CourseStatus int

const (
	StatusApproved  CourseStatus = 0
	StatusPending   CourseStatus = 1
	StatusCancelled CourseStatus = 2
)

type Course struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title        string       `gorm:"size:255;not null" json:"title"`
	Description  string       `gorm:"type:text;not null" json:"description"`
	Price        float64      `gorm:"type:numeric(10,2);not null" json:"price"`
	TeacherID    uuid.UUID    `gorm:"not null" json:"teacher_id"`
	CategoryID   uuid.UUID    `gorm:"not null" json:"category_id"`
	ThumbnailURL *string      `gorm:"type:text" json:"thumbnail_url"`
	VideoURL     *string      `gorm:"type:text" json:"video_url"`
	Status       CourseStatus `gorm:"not null;default:1" json:"status"`
	CancelReason *string      `gorm:"type:text" json:"cancel_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the ID when the dialect has no uuid default.
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
