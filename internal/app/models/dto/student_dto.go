package dto

// CreateStudentRequest represents a new student record
type CreateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
	ParentID *int64 `json:"parentId"`
}

// UpdateStudentRequest represents updates to a student record
type UpdateStudentRequest struct {
	Name     string `json:"name" binding:"required"`
	Grade    string `json:"grade" binding:"required"`
	ParentID *int64 `json:"parentId"`
}
