// Command provision grants or revokes the admin role for an existing account.
// Role changes never go through the HTTP surface, so operators run this
// directly against the database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"boutique/config"
	"boutique/internal/domain/entity"
	logs "boutique/internal/infra/log"
	"boutique/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

func main() {
	email := flag.String("email", "", "email of the account to update")
	role := flag.String("role", entity.RoleAdmin.String(), "role to assign (admin or customer)")
	flag.Parse()

	if err := run(*email, entity.Role(*role)); err != nil {
		fmt.Fprintln(os.Stderr, "provision failed:", err)
		os.Exit(1)
	}
}

func run(email string, role entity.Role) error {
	if email == "" {
		return errors.New("the -email flag is required")
	}
	if !role.IsValid() {
		return errors.Errorf("invalid role %q, expected admin or customer", role)
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	ctx := context.Background()
	userRepo := postgres.NewUserRepository(db)

	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return errors.Wrapf(err, "failed to look up account %s", email)
	}

	if user.Role == role {
		logger.Info("Account already has the requested role",
			"email", email,
			"role", role.String(),
		)

		return nil
	}

	if err := userRepo.UpdateRole(ctx, user.ID, role); err != nil {
		return errors.Wrapf(err, "failed to update role for %s", email)
	}

	logger.Info("Account role updated",
		"email", email,
		"previousRole", user.Role.String(),
		"role", role.String(),
	)

	return nil
}
