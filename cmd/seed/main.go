package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oksasatya/medlink-api/config"
	"github.com/oksasatya/medlink-api/internal/application"
	pginfra "github.com/oksasatya/medlink-api/internal/infrastructure/postgres"
	"github.com/oksasatya/medlink-api/pkg/apperror"
	"github.com/oksasatya/medlink-api/pkg/helpers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
		DSN:             cfg.PostgresDSN(),
		MaxConns:        cfg.DBMaxConns,
		MinConns:        cfg.DBMinConns,
		MaxConnLifetime: cfg.DBMaxConnLife,
	})
	if err != nil {
		logger.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	auth := application.NewAuthService(
		pginfra.NewUserRepository(pool),
		helpers.NewBcryptHasher(cfg.BcryptCost),
		helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL),
		application.WithLogger(logger),
	)

	email := "demo.doctor@medlink.local"
	password := "password123"
	years := 12
	profile, err := auth.Signup(ctx, application.SignupInput{
		FirstName:         "Demo",
		LastName:          "Doctor",
		Email:             email,
		Password:          password,
		Phone:             "+62 812 0000 0000",
		Country:           "Indonesia",
		City:              "Jakarta",
		Bio:               "Internal medicine specialist used for local development.",
		Locale:            "en",
		Specialization:    []string{"internal medicine"},
		YearsOfExperience: &years,
		LicenseNumber:     "DEMO-0001",
		LicenseCountry:    "Indonesia",
		Languages:         []string{"en", "id"},
	})
	switch {
	case apperror.IsKind(err, apperror.KindDuplicateEmail):
		logger.Infof("demo user %s already exists; nothing to do", email)
		return
	case err != nil:
		logger.Fatalf("failed to seed user: %+v", err)
	}

	// Approval is an administrative action the API never exposes.
	if _, err := pool.Exec(ctx, `UPDATE users SET approved = TRUE WHERE id = $1`, profile.ID); err != nil {
		logger.Fatalf("failed to approve seeded user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", profile.ID, email, password)
}
