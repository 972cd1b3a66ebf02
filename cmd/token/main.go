// Command token mints an access token for calling the API, signed with the
// configured JWT_SECRET_KEY.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cmlabs-hris/palm-payroll-go/internal/config"
	"github.com/cmlabs-hris/palm-payroll-go/internal/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "", "token subject, e.g. the operator's email")
	role := flag.String("role", "payroll", "role claim")
	flag.Parse()

	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}
	if cfg.JWT.Secret == "" {
		slog.Error("JWT_SECRET_KEY is not set")
		os.Exit(1)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).GenerateAccessToken(*subject, *role)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", time.Unix(expiresAt, 0).Format(time.RFC3339))
}
