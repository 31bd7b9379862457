package handler_test

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ecolog/carbon-tracker/internal/cache"
	"github.com/ecolog/carbon-tracker/internal/handler"
	"github.com/ecolog/carbon-tracker/internal/repository/mysql"
	"github.com/ecolog/carbon-tracker/internal/service"
)

// The handler tests run the full stack over an embedded database with the
// external schema recreated, the same way the repository tests do. The
// stored reporting routines do not exist there; the report endpoints are
// exercised for parameter validation and error mapping only.
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

// newTestMux wires every handler over a fresh database and returns the mux
// together with the database for seeding.
func newTestMux(t *testing.T) (*http.ServeMux, *mysql.DB) {
	t.Helper()

	db := newTestDB(t)
	store := cache.New(30 * time.Second)

	catalog := service.NewCatalogService(db.Users(), db.Activities(), db.Locations(), store, 4)
	logs := service.NewLogService(db.Logs(), store)
	reports := service.NewReportService(db.Reports(), store)
	importer := service.NewImporter(logs)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux,
		handler.NewCatalogHandler(catalog),
		handler.NewLogHandler(logs),
		handler.NewReportHandler(reports),
		handler.NewDashboardHandler(logs),
		handler.NewTransferHandler(logs, importer),
	)
	return mux, db
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

func seedActivityWithFactor(t *testing.T, db *mysql.DB, id int64, name string, factor float64) {
	t.Helper()
	if _, err := db.SqlDB.Exec(
		"INSERT OR IGNORE INTO Categories (CategoryID, CategoryName) VALUES (1, 'Transport')"); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if _, err := db.SqlDB.Exec(
		`INSERT INTO Activities (ActivityID, Name, UnitOfMeasure, CategoryID)
		 VALUES (?, ?, 'km', 1)`, id, name); err != nil {
		t.Fatalf("seed activity %d: %v", id, err)
	}
	if _, err := db.SqlDB.Exec(
		"INSERT INTO EmissionFactors (ActivityID, EmissionValue) VALUES (?, ?)", id, factor); err != nil {
		t.Fatalf("seed emission factor for activity %d: %v", id, err)
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
