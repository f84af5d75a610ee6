package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories so callers take one dependency.
type Repository struct {
	Course      CourseRepository
	CartDetail  CartDetailRepository
	OrderDetail OrderDetailRepository

	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Course:      NewCourseRepo(db),
		CartDetail:  NewCartDetailRepo(db),
		OrderDetail: NewOrderDetailRepo(db),
		db:          db,
	}
}

// Transaction runs fn against repositories bound to a single database transaction.
// If fn returns an error every statement issued inside it is rolled back.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
