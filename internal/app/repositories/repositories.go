package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository              *UserRepository
	VerificationTokenRepository *VerificationTokenRepository
	StudentRepository           *StudentRepository
	DailyProgressRepository     *DailyProgressRepository
	WeeklyFeedbackRepository    *WeeklyFeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:              NewUserRepository(db),
		VerificationTokenRepository: NewVerificationTokenRepository(db),
		StudentRepository:           NewStudentRepository(db),
		DailyProgressRepository:     NewDailyProgressRepository(db),
		WeeklyFeedbackRepository:    NewWeeklyFeedbackRepository(db),
	}
}
