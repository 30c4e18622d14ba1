package dto

import "github.com/kaganm/classpulse/internal/app/models"

// ActivityPayload is one activity record in a daily progress request
type ActivityPayload struct {
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
	Performance string `json:"performance" binding:"required"`
	Notes       string `json:"notes"`
}

// CreateDailyProgressRequest represents a new daily progress entry
type CreateDailyProgressRequest struct {
	StudentID  int64                   `json:"studentId" binding:"required,min=1"`
	Date       string                  `json:"date" binding:"required"` // YYYY-MM-DD
	Attendance models.AttendanceStatus `json:"attendance" binding:"required"`
	Activities []ActivityPayload       `json:"activities" binding:"dive"`
}

// UpdateDailyProgressRequest represents updates to a daily progress entry.
// Student and date identify the row and cannot be changed.
type UpdateDailyProgressRequest struct {
	Attendance models.AttendanceStatus `json:"attendance" binding:"required"`
	Activities []ActivityPayload       `json:"activities" binding:"dive"`
}

// Activities converts request payloads to model activities preserving order
func ToActivities(payloads []ActivityPayload) []models.Activity {
	activities := make([]models.Activity, 0, len(payloads))
	for _, p := range payloads {
		activities = append(activities, models.Activity{
			Subject:     p.Subject,
			Description: p.Description,
			Performance: p.Performance,
			Notes:       p.Notes,
		})
	}
	return activities
}
