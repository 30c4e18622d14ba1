package models

import "time"

// WeeklyFeedback defines the weekly feedback model based on the
// 'weekly_feedback' table. WeekStart must be a Sunday and WeekEnd is always
// WeekStart + 4 days (Thursday). One entry per (student, week_start),
// enforced by a unique constraint.
type WeeklyFeedback struct {
	ID            int64     `json:"id" db:"id"`
	StudentID     int64     `json:"studentId" db:"student_id"`
	WeekStart     time.Time `json:"weekStart" db:"week_start"`
	WeekEnd       time.Time `json:"weekEnd" db:"week_end"`
	Summary       string    `json:"summary" db:"summary"`
	Strengths     []string  `json:"strengths" db:"strengths"`
	Improvements  []string  `json:"improvements" db:"improvements"`
	TeacherNotes  *string   `json:"teacherNotes,omitempty" db:"teacher_notes"`
	NextWeekFocus *string   `json:"nextWeekFocus,omitempty" db:"next_week_focus"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
