package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderDetail struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrderID  uuid.UUID `gorm:"not null" json:"order_id"`
	CourseID uuid.UUID `gorm:"not null;index" json:"course_id"`
	Price    float64   `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
}

func (d *OrderDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
