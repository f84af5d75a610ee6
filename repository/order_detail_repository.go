package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainamuchara/course_market/models"
)

type OrderDetailRepository interface {
	DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error
}

type orderDetailRepo struct {
	db *gorm.DB
}

func NewOrderDetailRepo(db *gorm.DB) OrderDetailRepository {
	return &orderDetailRepo{db: db}
}

func (r *orderDetailRepo) DeleteByCourseID(ctx context.Context, courseID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&models.OrderDetail{}).Error
}
