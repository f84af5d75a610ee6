package services

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mainamuchara/course_market/models"
	"github.com/mainamuchara/course_market/repository"
	"github.com/mainamuchara/course_market/storage"
)

// CourseInput carries the scalar fields of a create or update request.
// Create and update validate identically.
type CourseInput struct {
	Title       string    `validate:"required"`
	Description string    `validate:"required"`
	Price       float64   `validate:"required,gt=0"`
	TeacherID   uuid.UUID `validate:"required"`
	CategoryID  uuid.UUID `validate:"required"`
}

// CourseService orchestrates validation, media uploads, and persistence for
// the course lifecycle.
type CourseService interface {
	GetAllCourses(ctx context.Context) ([]models.Course, error)
	GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	FindCoursesByTitle(ctx context.Context, title string) ([]models.Course, error)
	GetCoursesByStatus(ctx context.Context, status models.CourseStatus) ([]models.Course, error)
	GetCoursesByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Course, error)
	AddCourse(ctx context.Context, input CourseInput, thumbnail, video *storage.File) (*models.Course, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, input CourseInput, thumbnail, video *storage.File) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	ApproveCourse(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CancelCourse(ctx context.Context, id uuid.UUID, reason string) (*models.Course, error)
}

type courseService struct {
	repo     *repository.Repository
	uploader storage.Uploader
	validate *validator.Validate
}

func NewCourseService(repo *repository.Repository, uploader storage.Uploader) CourseService {
	return &courseService{
		repo:     repo,
		uploader: uploader,
		validate: validator.New(),
	}
}

func (s *courseService) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.repo.Course.FindAll(ctx)
}

func (s *courseService) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.findCourse(ctx, id)
}

func (s *courseService) FindCoursesByTitle(ctx context.Context, title string) ([]models.Course, error) {
	return s.repo.Course.FindByTitle(ctx, title)
}

func (s *courseService) GetCoursesByStatus(ctx context.Context, status models.CourseStatus) ([]models.Course, error) {
	return s.repo.Course.FindByStatus(ctx, status)
}

func (s *courseService) GetCoursesByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Course, error) {
	return s.repo.Course.FindByCategory(ctx, categoryID)
}

// AddCourse validates the input, uploads any supplied media, and persists a
// new course with status pending. Validation runs before any upload so a bad
// request never touches the storage provider.
func (s *courseService) AddCourse(ctx context.Context, input CourseInput, thumbnail, video *storage.File) (*models.Course, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	thumbnailURL, err := s.saveUpload(ctx, thumbnail, "image/jpeg")
	if err != nil {
		return nil, &UploadError{Media: "thumbnail", Err: err}
	}

	videoURL, err := s.saveUpload(ctx, video, "video/mp4")
	if err != nil {
		return nil, &UploadError{Media: "video", Err: err}
	}

	course := &models.Course{
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		TeacherID:    input.TeacherID,
		CategoryID:   input.CategoryID,
		ThumbnailURL: thumbnailURL,
		VideoURL:     videoURL,
		Status:       models.StatusPending,
	}

	if err := s.repo.Course.Save(ctx, course); err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return course, nil
}

// UpdateCourse overwrites the scalar fields and replaces a media URL only
// when new bytes for it were supplied.
func (s *courseService) UpdateCourse(ctx context.Context, id uuid.UUID, input CourseInput, thumbnail, video *storage.File) (*models.Course, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Price = input.Price
	course.TeacherID = input.TeacherID
	course.CategoryID = input.CategoryID

	if !thumbnail.IsEmpty() {
		url, err := s.saveUpload(ctx, thumbnail, "image/jpeg")
		if err != nil {
			return nil, &UploadError{Media: "thumbnail", Err: err}
		}
		course.ThumbnailURL = url
	}

	if !video.IsEmpty() {
		url, err := s.saveUpload(ctx, video, "video/mp4")
		if err != nil {
			return nil, &UploadError{Media: "video", Err: err}
		}
		course.VideoURL = url
	}

	if err := s.repo.Course.Save(ctx, course); err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return course, nil
}

// DeleteCourse removes the course together with every cart and order line
// item referencing it, in one transaction. Either all three deletes commit
// or none do.
func (s *courseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Course.ExistsByID(ctx, id)
	if err != nil {
		return &PersistenceError{Err: err}
	}
	if !exists {
		return &NotFoundError{ID: id}
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.CartDetail.DeleteByCourseID(ctx, id); err != nil {
			return err
		}
		if err := txRepo.OrderDetail.DeleteByCourseID(ctx, id); err != nil {
			return err
		}
		return txRepo.Course.DeleteByID(ctx, id)
	})
	if err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

func (s *courseService) ApproveCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	return s.setStatus(ctx, id, models.StatusApproved, nil)
}

func (s *courseService) CancelCourse(ctx context.Context, id uuid.UUID, reason string) (*models.Course, error) {
	return s.setStatus(ctx, id, models.StatusCancelled, &reason)
}

// setStatus overwrites the status unconditionally; any transition is legal.
func (s *courseService) setStatus(ctx context.Context, id uuid.UUID, status models.CourseStatus, reason *string) (*models.Course, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Status = status
	if reason != nil {
		course.CancelReason = reason
	}

	if err := s.repo.Course.Save(ctx, course); err != nil {
		return nil, &PersistenceError{Err: err}
	}
	return course, nil
}

func (s *courseService) findCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.repo.Course.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, &PersistenceError{Err: err}
	}
	return course, nil
}

func (s *courseService) validateInput(input CourseInput) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return &ValidationError{Field: "input", Message: err.Error()}
	}

	fe := fieldErrs[0]
	messages := map[string]string{
		"Title":       "Title is required.",
		"Description": "Description is required.",
		"Price":       "Price must be greater than zero.",
		"TeacherID":   "Teacher ID is required.",
		"CategoryID":  "Category ID is required.",
	}
	msg, ok := messages[fe.Field()]
	if !ok {
		msg = fe.Error()
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}

// saveUpload stages the bytes in a temp file, resolves the content type from
// the file name, and hands the file to the storage provider. The temp file is
// removed on every path. An empty file yields no URL and no error.
func (s *courseService) saveUpload(ctx context.Context, file *storage.File, declaredType string) (*string, error) {
	if file.IsEmpty() {
		return nil, nil
	}

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(file.Name))
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(file.Data); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	contentType := storage.ContentTypeFor(file.Name, declaredType)
	url, err := s.uploader.Upload(ctx, tmp, file.Name, contentType)
	if err != nil {
		return nil, err
	}
	return &url, nil
}
