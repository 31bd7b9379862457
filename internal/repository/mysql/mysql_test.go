package mysql_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/ecolog/carbon-tracker/internal/repository/mysql"
)

// The production schema, triggers and routines are owned by the database.
// The repository tests recreate the tables and the emission trigger on an
// embedded database so the SQL issued by this package runs against the real
// thing. The stored routines cannot be recreated here; the report service
// covers that surface with fakes.
var testSchema = []string{
	`CREATE TABLE Users (
		UserID INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		Email TEXT NOT NULL UNIQUE,
		Password TEXT NOT NULL,
		CarbonGoal REAL,
		RegistrationDate TEXT NOT NULL
	)`,
	`CREATE TABLE Categories (
		CategoryID INTEGER PRIMARY KEY AUTOINCREMENT,
		CategoryName TEXT NOT NULL
	)`,
	`CREATE TABLE Activities (
		ActivityID INTEGER PRIMARY KEY AUTOINCREMENT,
		Name TEXT NOT NULL,
		UnitOfMeasure TEXT NOT NULL,
		CategoryID INTEGER NOT NULL REFERENCES Categories(CategoryID)
	)`,
	`CREATE TABLE EmissionFactors (
		FactorID INTEGER PRIMARY KEY AUTOINCREMENT,
		ActivityID INTEGER NOT NULL REFERENCES Activities(ActivityID),
		EmissionValue REAL NOT NULL
	)`,
	`CREATE TABLE Locations (
		LocationID INTEGER PRIMARY KEY AUTOINCREMENT,
		City TEXT NOT NULL,
		Country TEXT NOT NULL
	)`,
	`CREATE TABLE ActivityLogs (
		LogID INTEGER PRIMARY KEY AUTOINCREMENT,
		UserID INTEGER NOT NULL REFERENCES Users(UserID),
		ActivityID INTEGER NOT NULL REFERENCES Activities(ActivityID),
		LocationID INTEGER REFERENCES Locations(LocationID),
		Date TEXT NOT NULL,
		Quantity REAL NOT NULL,
		CalculatedEmission REAL
	)`,
	`CREATE TRIGGER compute_emission AFTER INSERT ON ActivityLogs
	BEGIN
		UPDATE ActivityLogs
		SET CalculatedEmission = NEW.Quantity * COALESCE(
			(SELECT EmissionValue FROM EmissionFactors WHERE ActivityID = NEW.ActivityID), 0)
		WHERE LogID = NEW.LogID;
	END`,
}

func newTestDB(t *testing.T) *mysql.DB {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "carbon.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	ctx := context.Background()
	if _, err := sqlDB.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	for _, stmt := range testSchema {
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("create test schema: %v\n%s", err, stmt)
		}
	}

	return &mysql.DB{SqlDB: sqlDB}
}

func seedUser(t *testing.T, db *mysql.DB, id int64, name, email string) {
	t.Helper()
	_, err := db.SqlDB.Exec(
		`INSERT INTO Users (UserID, Name, Email, Password, CarbonGoal, RegistrationDate)
		 VALUES (?, ?, ?, 'x', 300, '2024-01-01')`, id, name, email)
	if err != nil {
		t.Fatalf("seed user %d: %v", id, err)
	}
}

func seedCategory(t *testing.T, db *mysql.DB, id int64, name string) {
	t.Helper()
	_, err := db.SqlDB.Exec(
		"INSERT INTO Categories (CategoryID, CategoryName) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("seed category %d: %v", id, err)
	}
}

func seedActivity(t *testing.T, db *mysql.DB, id int64, name, unit string, categoryID int64) {
	t.Helper()
	_, err := db.SqlDB.Exec(
		`INSERT INTO Activities (ActivityID, Name, UnitOfMeasure, CategoryID)
		 VALUES (?, ?, ?, ?)`, id, name, unit, categoryID)
	if err != nil {
		t.Fatalf("seed activity %d: %v", id, err)
	}
}

func seedEmissionFactor(t *testing.T, db *mysql.DB, activityID int64, value float64) {
	t.Helper()
	_, err := db.SqlDB.Exec(
		"INSERT INTO EmissionFactors (ActivityID, EmissionValue) VALUES (?, ?)", activityID, value)
	if err != nil {
		t.Fatalf("seed emission factor for activity %d: %v", activityID, err)
	}
}

func seedLocation(t *testing.T, db *mysql.DB, id int64, city, country string) {
	t.Helper()
	_, err := db.SqlDB.Exec(
		"INSERT INTO Locations (LocationID, City, Country) VALUES (?, ?, ?)", id, city, country)
	if err != nil {
		t.Fatalf("seed location %d: %v", id, err)
	}
}
