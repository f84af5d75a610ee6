package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mainamuchara/course_market/handlers"
)

func CourseRoutes(app *fiber.App, h *handlers.CourseHandler) {
	courses := app.Group("/public/courses")

	courses.Get("", h.GetAllCourses)
	courses.Post("", h.AddCourse)
	courses.Get("/search", h.FindCoursesByTitle)
	courses.Get("/approved", h.GetApprovedCourses)
	courses.Get("/category/:categoryId", h.GetCoursesByCategory)
	courses.Put("/cancelReason/:id", h.CancelCourse)

	// Parameterised paths go last so the literal routes above win.
	courses.Put("/:id/status", h.ApproveCourse)
	courses.Get("/:id", h.GetCourseByID)
	courses.Put("/:id", h.UpdateCourse)
	courses.Delete("/:id", h.DeleteCourse)
}
