package models

import (
	"time"
)

// User defines the account model based on the 'users' table. Admins, teachers
// and parents all live here, tagged by Role.
type User struct {
	ID            int64          `json:"id" db:"id" example:"1"`
	Name          string         `json:"name" db:"name" example:"Jane Doe"`
	Email         string         `json:"email" db:"email" example:"jane@school.org"`
	Password      string         `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Role          RoleType       `json:"role" db:"role" example:"TEACHER"`
	Status        ApprovalStatus `json:"status" db:"status" example:"PENDING"`
	EmailVerified bool           `json:"emailVerified" db:"email_verified" example:"false"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time      `json:"updatedAt" db:"updated_at"`
	LastLoginAt   *time.Time     `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// CanAuthenticate reports whether the account is currently allowed to use the
// API. Admins only need to exist; teachers and parents must be approved and
// have a verified email. Re-checked on every request, so a rejected account
// loses access on its next call even while its token is still signed-valid.
func (u *User) CanAuthenticate() bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.Status == StatusApproved && u.EmailVerified
}
