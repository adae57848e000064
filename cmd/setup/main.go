// One-shot bootstrap: creates the initial admin account (and indexes) so a
// fresh deployment can log in. Safe to run repeatedly.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/dhiraj-pandit/portfolio-api/internal/core/domain"
	"github.com/dhiraj-pandit/portfolio-api/internal/core/service"
	"github.com/dhiraj-pandit/portfolio-api/internal/infrastructure/db/mongo"
	"github.com/dhiraj-pandit/portfolio-api/internal/pkg/config"
	"github.com/dhiraj-pandit/portfolio-api/pkg/logger"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logger.New(logger.Options{Pretty: true})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration")
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to mongodb")
	}
	defer client.Disconnect(context.Background())

	repo := mongo.NewAdminRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensuring admin indexes")
	}
	if err := mongo.NewSkillRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("ensuring skill indexes")
	}

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@portfolio.local")
	password := envOr("ADMIN_PASSWORD", "admin123")

	exists, err := repo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		log.Fatal().Err(err).Msg("checking for existing admin")
	}
	if exists {
		log.Info().Str("username", username).Msg("admin account already present, nothing to do")
		return
	}

	hash, err := service.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("hashing password")
	}

	now := time.Now().UTC()
	_, err = repo.Create(ctx, &domain.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAdminExists) {
			log.Info().Str("username", username).Msg("admin account already present, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("creating admin account")
	}

	log.Info().Str("username", username).Msg("admin account created; change the password after first login")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
