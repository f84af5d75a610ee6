package handlers

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mainamuchara/course_market/models"
	"github.com/mainamuchara/course_market/services"
	"github.com/mainamuchara/course_market/storage"
)

type CourseHandler struct {
	service services.CourseService
}

func NewCourseHandler(service services.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

func errorResponse(message string) fiber.Map {
	return fiber.Map{
		"timestamp": time.Now(),
		"error":     message,
	}
}

// respondError maps the service error taxonomy onto status codes:
// validation 400, not found 404, everything else 500.
func (h *CourseHandler) respondError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(validationErr.Message))
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(errorResponse(notFoundErr.Error()))
	}

	return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("An error occurred: " + err.Error()))
}

func (h *CourseHandler) GetAllCourses(c *fiber.Ctx) error {
	courses, err := h.service.GetAllCourses(c.UserContext())
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *CourseHandler) AddCourse(c *fiber.Ctx) error {
	input, err := parseCourseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error()))
	}

	thumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Failed to read thumbnail file."))
	}
	video, err := formFile(c, "video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Failed to read video file."))
	}

	course, err := h.service.AddCourse(c.UserContext(), *input, thumbnail, video)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(course)
}

func (h *CourseHandler) UpdateCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid course ID."))
	}

	input, err := parseCourseForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse(err.Error()))
	}

	thumbnail, err := formFile(c, "thumbnail")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Failed to read thumbnail file."))
	}
	video, err := formFile(c, "video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Failed to read video file."))
	}

	course, err := h.service.UpdateCourse(c.UserContext(), id, *input, thumbnail, video)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(course)
}

func (h *CourseHandler) DeleteCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid course ID."))
	}

	if err := h.service.DeleteCourse(c.UserContext(), id); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *CourseHandler) GetCourseByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid course ID."))
	}

	course, err := h.service.GetCourseByID(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(course)
}

func (h *CourseHandler) FindCoursesByTitle(c *fiber.Ctx) error {
	title := c.Query("title")
	courses, err := h.service.FindCoursesByTitle(c.UserContext(), title)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *CourseHandler) GetApprovedCourses(c *fiber.Ctx) error {
	courses, err := h.service.GetCoursesByStatus(c.UserContext(), models.StatusApproved)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *CourseHandler) GetCoursesByCategory(c *fiber.Ctx) error {
	categoryID, err := uuid.Parse(c.Params("categoryId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid category ID."))
	}

	courses, err := h.service.GetCoursesByCategory(c.UserContext(), categoryID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(courses)
}

func (h *CourseHandler) ApproveCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid course ID."))
	}

	course, err := h.service.ApproveCourse(c.UserContext(), id)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(course)
}

func (h *CourseHandler) CancelCourse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid course ID."))
	}

	course, err := h.service.CancelCourse(c.UserContext(), id, c.Query("reason"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(course)
}

// parseCourseForm reads the scalar multipart fields. Absent ids stay at
// uuid.Nil so the service reports them as missing rather than malformed.
func parseCourseForm(c *fiber.Ctx) (*services.CourseInput, error) {
	input := &services.CourseInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	if raw := c.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("Price must be a valid number.")
		}
		input.Price = price
	}

	if raw := c.FormValue("teacherId"); raw != "" {
		teacherID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("Teacher ID must be a valid UUID.")
		}
		input.TeacherID = teacherID
	}

	if raw := c.FormValue("categoryId"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("Category ID must be a valid UUID.")
		}
		input.CategoryID = categoryID
	}

	return input, nil
}

// formFile captures an optional file part. A missing part is not an error.
func formFile(c *fiber.Ctx, name string) (*storage.File, error) {
	fileHeader, err := c.FormFile(name)
	if err != nil {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &storage.File{Name: fileHeader.Filename, Data: data}, nil
}
