package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/construction-sites/crm/internal/entity"
	"github.com/construction-sites/crm/internal/infra/database"
	"github.com/construction-sites/crm/internal/usecase"
)

// Creates a CRM operator. There is no self-service signup; accounts are
// provisioned from the command line.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	godotenv.Load()

	var (
		id       = flag.String("id", "", "Operator id (login name)")
		label    = flag.String("label", "", "Display label")
		role     = flag.String("role", "user", "Role (user or admin)")
		password = flag.String("password", "", "Plaintext password, hashed before storage")
	)
	flag.Parse()

	if *id == "" || *password == "" {
		log.Fatal().Msg("-id and -password are required")
	}
	if *label == "" {
		*label = *id
	}
	if entity.Role(*role) != entity.RoleUser && entity.Role(*role) != entity.RoleAdmin {
		log.Fatal().Str("role", *role).Msg("role must be user or admin")
	}

	hash, err := usecase.HashPassword(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	repo := database.NewOperatorRepository(db)
	op := &entity.Operator{
		ID:           *id,
		Label:        *label,
		Role:         entity.Role(*role),
		PasswordHash: hash,
	}

	if err := repo.Create(context.Background(), op); err != nil {
		log.Fatal().Err(err).Str("id", *id).Msg("failed to create operator")
	}

	log.Info().Str("id", *id).Str("role", *role).Msg("operator created")
}
