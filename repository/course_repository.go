package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainamuchara/course_market/models"
)

// CourseRepository is the persistence boundary for the Course entity.
type CourseRepository interface {
	FindAll(ctx context.Context) ([]models.Course, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	FindByTitle(ctx context.Context, title string) ([]models.Course, error)
	FindByStatus(ctx context.Context, status models.CourseStatus) ([]models.Course, error)
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Course, error)
	Save(ctx context.Context, course *models.Course) error
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) FindAll(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// FindByTitle matches on a case-insensitive substring of the title.
// LOWER(...) LIKE keeps the query portable across dialects.
func (r *courseRepo) FindByTitle(ctx context.Context, title string) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) FindByStatus(ctx context.Context, status models.CourseStatus) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Find(&courses).Error
	return courses, err
}

func (r *courseRepo) FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Find(&courses).Error
	return courses, err
}

// Save inserts the course when it has no ID yet and updates it otherwise.
func (r *courseRepo) Save(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

func (r *courseRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Course{}).Error
}

func (r *courseRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}
