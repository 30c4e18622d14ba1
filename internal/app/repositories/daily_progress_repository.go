package repositories

import (
	"context"
	"encoding/json"
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

const dailyProgressColumns = "id, student_id, entry_date, attendance, activities, created_at, updated_at"

// DailyProgressRepository handles database operations for daily progress
// entries. The unique constraint on (student_id, entry_date) is the final
// authority on the one-entry-per-day invariant; a violation surfaces as
// apperrors.ErrDuplicateEntry.
type DailyProgressRepository struct {
	db *pgxpool.Pool
}

// NewDailyProgressRepository creates a new DailyProgressRepository
func NewDailyProgressRepository(db *pgxpool.Pool) *DailyProgressRepository {
	return &DailyProgressRepository{db: db}
}

func scanDailyProgress(row pgx.Row) (*models.DailyProgress, error) {
	var entry models.DailyProgress
	var activitiesJSON []byte

	err := row.Scan(
		&entry.ID,
		&entry.StudentID,
		&entry.EntryDate,
		&entry.Attendance,
		&activitiesJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEntryNotFound
		}
		return nil, fmt.Errorf("error scanning daily progress: %w", err)
	}

	if err := json.Unmarshal(activitiesJSON, &entry.Activities); err != nil {
		return nil, fmt.Errorf("error decoding activities: %w", err)
	}

	return &entry, nil
}

// Create inserts a new daily progress entry and fills in its generated ID
func (r *DailyProgressRepository) Create(ctx context.Context, entry *models.DailyProgress) error {
	activitiesJSON, err := json.Marshal(entry.Activities)
	if err != nil {
		return fmt.Errorf("error encoding activities: %w", err)
	}

	query := squirrel.Insert("daily_progress").
		Columns("student_id", "entry_date", "attendance", "activities").
		Values(entry.StudentID, entry.EntryDate, entry.Attendance, activitiesJSON).
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
		return fmt.Errorf("error creating daily progress: %w", err)
	}

	return nil
}

// GetByID retrieves a daily progress entry by ID
func (r *DailyProgressRepository) GetByID(ctx context.Context, id int64) (*models.DailyProgress, error) {
	query := squirrel.Select(dailyProgressColumns).
		From("daily_progress").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return scanDailyProgress(r.db.QueryRow(ctx, sql, args...))
}

// GetByStudent retrieves a student's entries, newest first, optionally
// filtered to a single date
func (r *DailyProgressRepository) GetByStudent(ctx context.Context, studentID int64, date *time.Time) ([]models.DailyProgress, error) {
	query := squirrel.Select(dailyProgressColumns).
		From("daily_progress").
		Where("student_id = ?", studentID).
		OrderBy("entry_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if date != nil {
		query = query.Where("entry_date = ?", *date)
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

	var entries []models.DailyProgress
	for rows.Next() {
		var entry models.DailyProgress
		var activitiesJSON []byte
		err := rows.Scan(
			&entry.ID,
			&entry.StudentID,
			&entry.EntryDate,
			&entry.Attendance,
			&activitiesJSON,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if err := json.Unmarshal(activitiesJSON, &entry.Activities); err != nil {
			return nil, fmt.Errorf("error decoding activities: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Update updates the attendance and activities of an existing entry. The
// (student, date) key is immutable.
func (r *DailyProgressRepository) Update(ctx context.Context, entry *models.DailyProgress) error {
	activitiesJSON, err := json.Marshal(entry.Activities)
	if err != nil {
		return fmt.Errorf("error encoding activities: %w", err)
	}

	query := squirrel.Update("daily_progress").
		Set("attendance", entry.Attendance).
		Set("activities", activitiesJSON).
		Set("updated_at", time.Now()).
		Where("id = ?", entry.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating daily progress: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEntryNotFound
	}

	return nil
}
