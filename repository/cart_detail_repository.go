package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainamuchara/course_market/models"
)

type CartDetailRepository interface {
	DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error
}

type cartDetailRepo struct {
	db *gorm.DB
}

func NewCartDetailRepo(db *gorm.DB) CartDetailRepository {
	return &cartDetailRepo{db: db}
}

func (r *cartDetailRepo) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&models.CartDetail{}).Error
}
