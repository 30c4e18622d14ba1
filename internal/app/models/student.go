package models

import "time"

// Student defines the student model based on the 'students' table.
// ParentID is nil while the student is unassigned; a student has at most one
// owning parent.
type Student struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Grade     string    `json:"grade" db:"grade"`
	ParentID  *int64    `json:"parentId,omitempty" db:"parent_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// OwnedBy reports whether the given parent owns this student.
func (s *Student) OwnedBy(parentID int64) bool {
	return s.ParentID != nil && *s.ParentID == parentID
}
