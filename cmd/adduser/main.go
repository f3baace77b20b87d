package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/2beens/traintrack/internal/auth"
	"github.com/2beens/traintrack/internal/config"
	"github.com/2beens/traintrack/internal/db"

	log "github.com/sirupsen/logrus"
)

// adduser creates a new account directly in the database. The service
// has no open registration endpoint, so this is the only way in.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	username := flag.String("username", "", "username of the new account")
	password := flag.String("password", "", "password of the new account")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatalln("both -username and -password must be set")
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := db.NewPool(ctx, cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName, false)
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	user, err := auth.CreateUser(ctx, auth.NewUsersRepo(dbPool), *username, *password)
	if err != nil {
		log.Fatalf("create user: %s", err)
	}

	fmt.Printf("user [%s] created, id: %d\n", user.Username, user.ID)
}
