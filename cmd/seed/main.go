// Command seed creates the database schema and loads a small starter
// catalog plus an admin account. It is intended for local development.
package main

import (
	"log/slog"
	"os"

	"tomatoes/config"
	"tomatoes/internal/infra/auth"
	logs "tomatoes/internal/infra/log"
	"tomatoes/internal/infra/persistence/model"
	"tomatoes/internal/infra/persistence/postgres"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL", slog.Any("error", err))
		os.Exit(1)
	}

	if err := run(cfg, logger, db); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("Database seeded")
}

func run(cfg *config.Config, logger *slog.Logger, db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.MovieModel{},
		&model.ActorModel{},
	); err != nil {
		return err
	}
	logger.Info("Schema migrated")

	movies := []model.MovieModel{
		{
			Title:       "Spider-Man: No Way Home",
			Genre:       "Action",
			Length:      148,
			ReleaseYear: 2021,
			Rating:      8.2,
		},
		{
			Title:       "Dune",
			Genre:       "Sci-fi",
			Length:      155,
			ReleaseYear: 2021,
			Rating:      8.0,
		},
	}
	for i := range movies {
		if err := db.Where(model.MovieModel{Title: movies[i].Title}).
			FirstOrCreate(&movies[i]).Error; err != nil {
			return err
		}
	}
	logger.Info("Movies seeded", slog.Int("count", len(movies)))

	actors := []model.ActorModel{
		{
			FirstName:   "Tom",
			LastName:    "Holland",
			Gender:      "male",
			Country:     "UK",
			DateOfBirth: "01/06/1996",
		},
		{
			FirstName:   "Marisa",
			LastName:    "Tomei",
			Gender:      "female",
			Country:     "USA",
			DateOfBirth: "04/12/1964",
		},
		{
			FirstName:   "Timothee",
			LastName:    "Chalamet",
			Gender:      "male",
			Country:     "USA",
			DateOfBirth: "27/12/1995",
		},
		{
			FirstName:   "Zendaya",
			LastName:    "Coleman",
			Gender:      "female",
			Country:     "USA",
			DateOfBirth: "01/09/1996",
		},
	}
	for i := range actors {
		if err := db.Where(model.ActorModel{
			FirstName: actors[i].FirstName,
			LastName:  actors[i].LastName,
		}).FirstOrCreate(&actors[i]).Error; err != nil {
			return err
		}
	}
	logger.Info("Actors seeded", slog.Int("count", len(actors)))

	return seedAdmin(cfg, logger, db)
}

func seedAdmin(cfg *config.Config, logger *slog.Logger, db *gorm.DB) error {
	email := os.Getenv("SEED_ADMIN_EMAIL")
	if email == "" {
		email = "admin@test.com"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "password123"
	}

	hasher := auth.NewBcryptHasher(cfg)
	if err := hasher.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	admin := model.UserModel{
		Email:        email,
		PasswordHash: hash,
		Admin:        true,
	}
	if err := db.Where(model.UserModel{Email: email}).
		Attrs(admin).FirstOrCreate(&admin).Error; err != nil {
		return err
	}
	logger.Info("Admin account ready", slog.String("email", email))

	return nil
}
