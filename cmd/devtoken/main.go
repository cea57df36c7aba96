// Command devtoken mints a bearer token for local testing, signed with the
// same JWT settings the API reads from the environment.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"cotador_telecom/internal/domain/authz"
	"cotador_telecom/internal/infrastructure/auth"
	"cotador_telecom/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

func main() {
	sub := flag.String("sub", "dev-user", "user id (token subject)")
	role := flag.String("role", string(authz.RoleUser), "role: admin, diretor or user")
	email := flag.String("email", "", "email claim")
	name := flag.String("name", "", "name claim")
	ttl := flag.Duration("ttl", 8*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	r, ok := authz.ParseRole(*role)
	if !ok {
		log.Fatal().Str("role", *role).Msg("unknown role")
	}

	svc := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	token, err := svc.Sign(authz.Principal{UserID: *sub, Role: r, Email: *email, Name: *name}, *ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign token")
	}
	fmt.Fprintln(os.Stdout, token)
}
