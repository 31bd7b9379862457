package service

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecolog/carbon-tracker/internal/cache"
	"github.com/ecolog/carbon-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

// CatalogService serves the master data behind the pickers and forms: users,
// the activity catalog and locations. Reads go through the shared cache;
// creating a user invalidates it.
type CatalogService struct {
	users      domain.UserRepository
	activities domain.ActivityRepository
	locations  domain.LocationRepository
	cache      *cache.Store
	bcryptCost int
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(users domain.UserRepository, activities domain.ActivityRepository, locations domain.LocationRepository, store *cache.Store, bcryptCost int) *CatalogService {
	return &CatalogService{
		users:      users,
		activities: activities,
		locations:  locations,
		cache:      store,
		bcryptCost: bcryptCost,
	}
}

// ListUsers returns all users ordered by id.
func (s *CatalogService) ListUsers(ctx context.Context) ([]domain.User, error) {
	key := cache.Key("users.list")
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.User), nil
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	s.cache.Set(key, users)
	return users, nil
}

// CreateUser validates and stores a new user, returning the assigned id.
// The password is hashed before storage and never leaves this process in
// clear text.
func (s *CatalogService) CreateUser(ctx context.Context, name, email, password string, carbonGoal *float64, registrationDate string) (int64, error) {
	if name == "" || email == "" || password == "" {
		return 0, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return 0, fmt.Errorf("%w: malformed email %q", domain.ErrValidation, email)
	}
	if carbonGoal != nil && *carbonGoal < 0 {
		return 0, fmt.Errorf("%w: carbon goal must not be negative", domain.ErrValidation)
	}
	if _, err := time.Parse(dateLayout, registrationDate); err != nil {
		return 0, fmt.Errorf("%w: registration date must be YYYY-MM-DD", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	id, err := s.users.Create(ctx, domain.NewUser{
		Name:             name,
		Email:            email,
		PasswordHash:     string(hash),
		CarbonGoal:       carbonGoal,
		RegistrationDate: registrationDate,
	})
	if err != nil {
		return 0, err
	}

	s.cache.Invalidate()
	return id, nil
}

// ListActivities returns the activity catalog with category names and
// emission factors.
func (s *CatalogService) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	key := cache.Key("activities.list")
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.Activity), nil
	}

	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	s.cache.Set(key, activities)
	return activities, nil
}

// ListLocations returns all locations ordered by city.
func (s *CatalogService) ListLocations(ctx context.Context) ([]domain.Location, error) {
	key := cache.Key("locations.list")
	if v, ok := s.cache.Get(key); ok {
		return v.([]domain.Location), nil
	}

	locations, err := s.locations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	s.cache.Set(key, locations)
	return locations, nil
}
