package domain

import "context"

// User is a registered person whose carbon activity is tracked.
type User struct {
	ID               int64
	Name             string
	Email            string
	CarbonGoal       *float64 // monthly goal in kgCO2; nil when the user has not set one
	RegistrationDate string   // YYYY-MM-DD
}

// NewUser carries the fields accepted when creating a user. The password is
// hashed by the service layer before it reaches the repository.
type NewUser struct {
	Name             string
	Email            string
	PasswordHash     string
	CarbonGoal       *float64
	RegistrationDate string
}

// UserRepository defines persistence operations for users. Users are never
// updated or deleted through this application.
type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, user NewUser) (int64, error)
}
