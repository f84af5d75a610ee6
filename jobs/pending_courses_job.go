package jobs

import (
	"log"

	"github.com/mainamuchara/course_market/database"
	"github.com/mainamuchara/course_market/models"
)

// ReportPendingCourses logs how many courses are still waiting for review.
// The catalog has no admin dashboard, so this is the operational signal that
// the review queue is growing.
func ReportPendingCourses() {
	log.Println("Running job: ReportPendingCourses...")

	var pendingCount int64
	err := database.DB.
		Model(&models.Course{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingCount).Error
	if err != nil {
		log.Printf("Error counting pending courses: %v", err)
		return
	}

	if pendingCount == 0 {
		return
	}
	log.Printf("%d course(s) pending review", pendingCount)
}
