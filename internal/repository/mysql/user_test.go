package mysql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ecolog/carbon-tracker/internal/domain"
	"github.com/ecolog/carbon-tracker/internal/repository/mysql"
)

func TestUserRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := mysql.NewUserRepository(db)
	ctx := context.Background()

	goal := 250.0
	id, err := repo.Create(ctx, domain.NewUser{
		Name:             "Ada",
		Email:            "ada@example.com",
		PasswordHash:     "hashed",
		CarbonGoal:       &goal,
		RegistrationDate: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a nonzero user id")
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	u := users[0]
	if u.ID != id || u.Name != "Ada" || u.Email != "ada@example.com" {
		t.Fatalf("unexpected user row: %+v", u)
	}
	if u.CarbonGoal == nil || *u.CarbonGoal != 250.0 {
		t.Fatalf("expected carbon goal 250, got %v", u.CarbonGoal)
	}
	if u.RegistrationDate != "2024-03-01" {
		t.Fatalf("expected registration date 2024-03-01, got %q", u.RegistrationDate)
	}
}

func TestUserRepository_Create_NilGoal(t *testing.T) {
	db := newTestDB(t)
	repo := mysql.NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.NewUser{
		Name:             "Ben",
		Email:            "ben@example.com",
		PasswordHash:     "hashed",
		RegistrationDate: "2024-03-02",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if users[0].CarbonGoal != nil {
		t.Fatalf("expected nil carbon goal, got %v", *users[0].CarbonGoal)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := mysql.NewUserRepository(db)
	ctx := context.Background()

	user := domain.NewUser{Name: "Cara", Email: "dup@example.com", PasswordHash: "h", RegistrationDate: "2024-01-01"}
	if _, err := repo.Create(ctx, user); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := repo.Create(ctx, user)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_List_OrderedByID(t *testing.T) {
	db := newTestDB(t)
	repo := mysql.NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, db, 7, "Late", "late@example.com")
	seedUser(t, db, 2, "Early", "early@example.com")

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 || users[0].ID != 2 || users[1].ID != 7 {
		t.Fatalf("expected users ordered by id ascending, got %+v", users)
	}
}
