// Command authtool prepares credentials for the API auth modes: a bcrypt
// hash for AUTH_PASSWORD_HASH, or a signed bearer token for AUTH_MODE=jwt.
//
//	authtool hash -password s3cret
//	authtool token -subject ops -ttl 24h
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"cardcost/internal/config"
	"cardcost/internal/utils"

	logger "github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("usage: authtool <hash|token> [flags]")
	}

	switch args[0] {
	case "hash":
		fs := flag.NewFlagSet("hash", flag.ContinueOnError)
		password := fs.String("password", "", "password to hash")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if *password == "" {
			return errors.New("-password is required")
		}

		hash, err := utils.HashPassword(*password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		_, err = fmt.Fprintln(out, hash)
		return err

	case "token":
		fs := flag.NewFlagSet("token", flag.ContinueOnError)
		subject := fs.String("subject", "", "token subject")
		ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
		secret := fs.String("secret", config.GetEnv("AUTH_JWT_SECRET", ""), "signing secret")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		token, err := utils.GenerateToken([]byte(*secret), *subject, *ttl)
		if err != nil {
			return fmt.Errorf("failed to generate token: %w", err)
		}
		_, err = fmt.Fprintln(out, token)
		return err

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
