package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mainamuchara/course_market/handlers"
	"github.com/mainamuchara/course_market/models"
	"github.com/mainamuchara/course_market/routes"
	"github.com/mainamuchara/course_market/services"
	"github.com/mainamuchara/course_market/storage"
)

// stubCourseService records calls and serves canned results.
type stubCourseService struct {
	course  *models.Course
	courses []models.Course
	err     error

	lastInput     services.CourseInput
	lastThumbnail *storage.File
	lastVideo     *storage.File
	lastID        uuid.UUID
	lastTitle     string
	lastStatus    models.CourseStatus
	lastReason    string
}

func (s *stubCourseService) GetAllCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses, s.err
}

func (s *stubCourseService) GetCourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	s.lastID = id
	return s.course, s.err
}

func (s *stubCourseService) FindCoursesByTitle(ctx context.Context, title string) ([]models.Course, error) {
	s.lastTitle = title
	return s.courses, s.err
}

func (s *stubCourseService) GetCoursesByStatus(ctx context.Context, status models.CourseStatus) ([]models.Course, error) {
	s.lastStatus = status
	return s.courses, s.err
}

func (s *stubCourseService) GetCoursesByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.Course, error) {
	s.lastID = categoryID
	return s.courses, s.err
}

func (s *stubCourseService) AddCourse(ctx context.Context, input services.CourseInput, thumbnail, video *storage.File) (*models.Course, error) {
	s.lastInput = input
	s.lastThumbnail = thumbnail
	s.lastVideo = video
	return s.course, s.err
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, id uuid.UUID, input services.CourseInput, thumbnail, video *storage.File) (*models.Course, error) {
	s.lastID = id
	s.lastInput = input
	s.lastThumbnail = thumbnail
	s.lastVideo = video
	return s.course, s.err
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	s.lastID = id
	return s.err
}

func (s *stubCourseService) ApproveCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	s.lastID = id
	return s.course, s.err
}

func (s *stubCourseService) CancelCourse(ctx context.Context, id uuid.UUID, reason string) (*models.Course, error) {
	s.lastID = id
	s.lastReason = reason
	return s.course, s.err
}

func setupTestApp(stub *stubCourseService) *fiber.App {
	app := fiber.New()
	routes.CourseRoutes(app, handlers.NewCourseHandler(stub))
	return app
}

func sampleCourse() *models.Course {
	return &models.Course{
		ID:          uuid.New(),
		Title:       "Intro to Go",
		Description: "Build backends with Go",
		Price:       49.99,
		TeacherID:   uuid.New(),
		CategoryID:  uuid.New(),
		Status:      models.StatusPending,
	}
}

type multipartRequest struct {
	body        bytes.Buffer
	writer      *multipart.Writer
	contentType string
}

func buildMultipart(t *testing.T, fields map[string]string, files map[string][]byte) *multipartRequest {
	t.Helper()

	req := &multipartRequest{}
	req.writer = multipart.NewWriter(&req.body)
	for key, value := range fields {
		require.NoError(t, req.writer.WriteField(key, value))
	}
	for name, data := range files {
		part, err := req.writer.CreateFormFile(name, name+".png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, req.writer.Close())
	req.contentType = req.writer.FormDataContentType()
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestGetAllCourses(t *testing.T) {
	stub := &stubCourseService{courses: []models.Course{*sampleCourse(), *sampleCourse()}}
	app := setupTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public/courses", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(raw, &courses))
	assert.Len(t, courses, 2)
}

func TestAddCourse_Success(t *testing.T) {
	course := sampleCourse()
	stub := &stubCourseService{course: course}
	app := setupTestApp(stub)

	form := buildMultipart(t, map[string]string{
		"title":       "Intro to Go",
		"description": "Build backends with Go",
		"price":       "49.99",
		"teacherId":   course.TeacherID.String(),
		"categoryId":  course.CategoryID.String(),
	}, map[string][]byte{"thumbnail": []byte("png-bytes")})

	req := httptest.NewRequest(http.MethodPost, "/public/courses", &form.body)
	req.Header.Set("Content-Type", form.contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Intro to Go", stub.lastInput.Title)
	assert.Equal(t, 49.99, stub.lastInput.Price)
	assert.Equal(t, course.TeacherID, stub.lastInput.TeacherID)
	require.NotNil(t, stub.lastThumbnail)
	assert.Equal(t, []byte("png-bytes"), stub.lastThumbnail.Data)
	assert.Nil(t, stub.lastVideo)
}

func TestAddCourse_ValidationErrorBodyShape(t *testing.T) {
	stub := &stubCourseService{err: &services.ValidationError{Field: "Title", Message: "Title is required."}}
	app := setupTestApp(stub)

	form := buildMultipart(t, map[string]string{"description": "d", "price": "10"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/public/courses", &form.body)
	req.Header.Set("Content-Type", form.contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Title is required.", body["error"])
	assert.Contains(t, body, "timestamp")
}

func TestAddCourse_UnparseablePrice(t *testing.T) {
	stub := &stubCourseService{}
	app := setupTestApp(stub)

	form := buildMultipart(t, map[string]string{"title": "t", "price": "lots"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/public/courses", &form.body)
	req.Header.Set("Content-Type", form.contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetCourseByID_NotFoundMapsTo404(t *testing.T) {
	missing := uuid.New()
	stub := &stubCourseService{err: &services.NotFoundError{ID: missing}}
	app := setupTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public/courses/"+missing.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], missing.String())
}

func TestGetCourseByID_InvalidUUID(t *testing.T) {
	app := setupTestApp(&stubCourseService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public/courses/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteCourse(t *testing.T) {
	stub := &stubCourseService{}
	app := setupTestApp(stub)
	id := uuid.New()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/public/courses/"+id.String(), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, stub.lastID)
}

func TestUploadOrPersistenceFailureMapsTo500(t *testing.T) {
	stub := &stubCourseService{err: &services.UploadError{Media: "thumbnail", Err: io.ErrUnexpectedEOF}}
	app := setupTestApp(stub)

	form := buildMultipart(t, map[string]string{"title": "t", "description": "d", "price": "10"}, nil)
	req := httptest.NewRequest(http.MethodPost, "/public/courses", &form.body)
	req.Header.Set("Content-Type", form.contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "thumbnail")
}

func TestFindCoursesByTitle(t *testing.T) {
	stub := &stubCourseService{courses: []models.Course{}}
	app := setupTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public/courses/search?title=go", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "go", stub.lastTitle)
}

func TestGetApprovedCourses(t *testing.T) {
	stub := &stubCourseService{courses: []models.Course{}}
	app := setupTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/public/courses/approved", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.StatusApproved, stub.lastStatus)
}

func TestApproveCourse(t *testing.T) {
	course := sampleCourse()
	course.Status = models.StatusApproved
	stub := &stubCourseService{course: course}
	app := setupTestApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodPut, "/public/courses/"+course.ID.String()+"/status", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, course.ID, stub.lastID)
}

func TestCancelCourse_PassesReason(t *testing.T) {
	course := sampleCourse()
	course.Status = models.StatusCancelled
	stub := &stubCourseService{course: course}
	app := setupTestApp(stub)

	target := "/public/courses/cancelReason/" + course.ID.String() + "?reason=refund%20requested"
	resp, err := app.Test(httptest.NewRequest(http.MethodPut, target, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, course.ID, stub.lastID)
	assert.Equal(t, "refund requested", stub.lastReason)
}
