package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kaganm/classpulse/internal/app/models"
	"github.com/kaganm/classpulse/internal/pkg/apperrors"
	"github.com/kaganm/classpulse/internal/pkg/dberrors"
)

const weeklyFeedbackColumns = "id, student_id, week_start, week_end, summary, strengths, improvements, teacher_notes, next_week_focus, created_at, updated_at"

// WeeklyFeedbackRepository handles database operations for weekly feedback
// entries. The unique constraint on (student_id, week_start) is the final
// authority on the one-entry-per-week invariant.
type WeeklyFeedbackRepository struct {
	db *pgxpool.Pool
}

// NewWeeklyFeedbackRepository creates a new WeeklyFeedbackRepository
func NewWeeklyFeedbackRepository(db *pgxpool.Pool) *WeeklyFeedbackRepository {
	return &WeeklyFeedbackRepository{db: db}
}

func scanWeeklyFeedback(row pgx.Row) (*models.WeeklyFeedback, error) {
	var entry models.WeeklyFeedback
	err := row.Scan(
		&entry.ID,
		&entry.StudentID,
		&entry.WeekStart,
		&entry.WeekEnd,
		&entry.Summary,
		&entry.Strengths,
		&entry.Improvements,
		&entry.TeacherNotes,
		&entry.NextWeekFocus,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("error scanning weekly feedback: %w", err)
	}
	return &entry, nil
}

// Create inserts a new weekly feedback entry and fills in its generated ID
func (r *WeeklyFeedbackRepository) Create(ctx context.Context, entry *models.WeeklyFeedback) error {
	query := squirrel.Insert("weekly_feedback").
		Columns("student_id", "week_start", "week_end", "summary", "strengths", "improvements", "teacher_notes", "next_week_focus").
		Values(entry.StudentID, entry.WeekStart, entry.WeekEnd, entry.Summary, entry.Strengths, entry.Improvements, entry.TeacherNotes, entry.NextWeekFocus).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDuplicateEntry
		}
		return fmt.Errorf("error creating weekly feedback: %w", err)
	}

	return nil
}

// GetByID retrieves a weekly feedback entry by ID
func (r *WeeklyFeedbackRepository) GetByID(ctx context.Context, id int64) (*models.WeeklyFeedback, error) {
	query := squirrel.Select(weeklyFeedbackColumns).
		From("weekly_feedback").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return scanWeeklyFeedback(r.db.QueryRow(ctx, sql, args...))
}

// GetByStudent retrieves a student's feedback entries, newest week first,
// optionally filtered to a single week start
func (r *WeeklyFeedbackRepository) GetByStudent(ctx context.Context, studentID int64, weekStart *time.Time) ([]models.WeeklyFeedback, error) {
	query := squirrel.Select(weeklyFeedbackColumns).
		From("weekly_feedback").
		Where("student_id = ?", studentID).
		OrderBy("week_start DESC").
		PlaceholderFormat(squirrel.Dollar)

	if weekStart != nil {
		query = query.Where("week_start = ?", *weekStart)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var entries []models.WeeklyFeedback
	for rows.Next() {
		var entry models.WeeklyFeedback
		err := rows.Scan(
			&entry.ID,
			&entry.StudentID,
			&entry.WeekStart,
			&entry.WeekEnd,
			&entry.Summary,
			&entry.Strengths,
			&entry.Improvements,
			&entry.TeacherNotes,
			&entry.NextWeekFocus,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update updates the feedback content of an existing entry. The
// (student, week_start) key is immutable.
func (r *WeeklyFeedbackRepository) Update(ctx context.Context, entry *models.WeeklyFeedback) error {
	query := squirrel.Update("weekly_feedback").
		Set("summary", entry.Summary).
		Set("strengths", entry.Strengths).
		Set("improvements", entry.Improvements).
		Set("teacher_notes", entry.TeacherNotes).
		Set("next_week_focus", entry.NextWeekFocus).
		Set("updated_at", time.Now()).
		Where("id = ?", entry.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating weekly feedback: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEntryNotFound
	}

	return nil
}
