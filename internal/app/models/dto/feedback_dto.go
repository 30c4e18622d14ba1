package dto

// CreateWeeklyFeedbackRequest represents a new weekly feedback entry.
// WeekStart must be a Sunday; the week end is derived server-side.
type CreateWeeklyFeedbackRequest struct {
	StudentID     int64    `json:"studentId" binding:"required,min=1"`
	WeekStart     string   `json:"weekStart" binding:"required"` // YYYY-MM-DD
	Summary       string   `json:"summary" binding:"required"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	TeacherNotes  *string  `json:"teacherNotes"`
	NextWeekFocus *string  `json:"nextWeekFocus"`
}

// UpdateWeeklyFeedbackRequest represents updates to a weekly feedback entry.
// Student and week identify the row and cannot be changed.
type UpdateWeeklyFeedbackRequest struct {
	Summary       string   `json:"summary" binding:"required"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	TeacherNotes  *string  `json:"teacherNotes"`
	NextWeekFocus *string  `json:"nextWeekFocus"`
}
