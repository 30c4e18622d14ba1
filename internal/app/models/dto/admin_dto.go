package dto

import "github.com/kaganm/classpulse/internal/app/models"

// ApprovalRequest identifies a pending teacher or parent account for an
// admin approve/reject action
type ApprovalRequest struct {
	ID   int64           `json:"id" binding:"required,min=1"`
	Role models.RoleType `json:"role" binding:"required"`
}

// PendingUsersResponse lists accounts awaiting an admin decision
type PendingUsersResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}
