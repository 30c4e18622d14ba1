package models

import "testing"

func TestCanAuthenticate(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"admin always allowed", User{Role: RoleAdmin, Status: StatusPending, EmailVerified: false}, true},
		{"approved verified teacher", User{Role: RoleTeacher, Status: StatusApproved, EmailVerified: true}, true},
		{"approved verified parent", User{Role: RoleParent, Status: StatusApproved, EmailVerified: true}, true},
		{"pending teacher", User{Role: RoleTeacher, Status: StatusPending, EmailVerified: true}, false},
		{"rejected parent", User{Role: RoleParent, Status: StatusRejected, EmailVerified: true}, false},
		{"approved but unverified", User{Role: RoleTeacher, Status: StatusApproved, EmailVerified: false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.CanAuthenticate(); got != tt.want {
				t.Errorf("CanAuthenticate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStudentOwnedBy(t *testing.T) {
	parentID := int64(5)

	linked := Student{ID: 1, ParentID: &parentID}
	if !linked.OwnedBy(5) {
		t.Error("linked student should be owned by its parent")
	}
	if linked.OwnedBy(6) {
		t.Error("linked student should not be owned by another parent")
	}

	unlinked := Student{ID: 2}
	if unlinked.OwnedBy(5) {
		t.Error("unlinked student should not be owned by anyone")
	}
}

func TestRoleTypeValid(t *testing.T) {
	for _, role := range []RoleType{RoleAdmin, RoleTeacher, RoleParent} {
		if !role.Valid() {
			t.Errorf("role %q should be valid", role)
		}
	}
	for _, role := range []RoleType{"", "STUDENT", "admin"} {
		if role.Valid() {
			t.Errorf("role %q should not be valid", role)
		}
	}
}

func TestAttendanceStatusValid(t *testing.T) {
	for _, status := range []AttendanceStatus{AttendancePresent, AttendanceAbsent, AttendanceLate} {
		if !status.Valid() {
			t.Errorf("attendance %q should be valid", status)
		}
	}
	for _, status := range []AttendanceStatus{"", "present", "EXCUSED"} {
		if status.Valid() {
			t.Errorf("attendance %q should not be valid", status)
		}
	}
}
