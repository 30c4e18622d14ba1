package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_daily_progress_student_date"}
	foreignKey := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) {
		t.Error("23505 should be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("error creating daily progress: %w", unique)) {
		t.Error("wrapped 23505 should be a unique violation")
	}
	if IsUniqueViolation(foreignKey) {
		t.Error("23503 is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("non-pg error is not a unique violation")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_weekly_feedback_student_week"}

	if !IsDuplicateConstraintError(unique, "uq_weekly_feedback_student_week") {
		t.Error("matching constraint name should be detected")
	}
	if IsDuplicateConstraintError(unique, "uq_users_email") {
		t.Error("different constraint name should not match")
	}
}
