package models

import "time"

// Activity is one activity record inside a daily progress entry. The list is
// stored as JSONB in entry order.
type Activity struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	Performance string `json:"performance"`
	Notes       string `json:"notes,omitempty"`
}

// DailyProgress defines the daily progress model based on the
// 'daily_progress' table. One entry per (student, entry_date), enforced by a
// unique constraint.
type DailyProgress struct {
	ID         int64            `json:"id" db:"id"`
	StudentID  int64            `json:"studentId" db:"student_id"`
	EntryDate  time.Time        `json:"entryDate" db:"entry_date"`
	Attendance AttendanceStatus `json:"attendance" db:"attendance"`
	Activities []Activity       `json:"activities" db:"activities"`
	CreatedAt  time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time        `json:"updatedAt" db:"updated_at"`
}
