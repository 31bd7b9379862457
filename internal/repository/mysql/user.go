package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// UserRepository implements domain.UserRepository over MySQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a MySQL-backed UserRepository.
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db.SqlDB}
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT UserID, Name, Email, CarbonGoal, RegistrationDate
		 FROM Users ORDER BY UserID`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.CarbonGoal, &u.RegistrationDate); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Create(ctx context.Context, user domain.NewUser) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO Users (Name, Email, Password, CarbonGoal, RegistrationDate)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.PasswordHash, user.CarbonGoal, user.RegistrationDate,
	)
	if err != nil {
		if isDuplicateEntry(err) {
			return 0, fmt.Errorf("%w: %s", domain.ErrDuplicateEmail, user.Email)
		}
		return 0, fmt.Errorf("%w: insert user: %v", domain.ErrWrite, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}
