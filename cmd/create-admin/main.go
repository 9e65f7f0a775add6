// Command create-admin registers an administrator account.
//
//	create-admin -email boss@penguin.io -password 'correct horse' [-role admin]
package main

import (
	"context"
	"flag"
	"fmt"

	"penguinadmin/cmd"
	"penguinadmin/internal/core/application/usecases/commands"
	"penguinadmin/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	role := flag.String("role", "", "admin role (default admin)")
	flag.Parse()

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Database unavailable: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, cmd.NewLogger(configs.LogLevel))
	handler := app.CreateCreateAdminCommandHandler()

	id := kernel.NewUUID()
	command, err := commands.NewCreateAdminCommand(id, *email, *password, *role)
	if err != nil {
		log.Fatalf("Invalid admin: %v", err)
	}
	if err = handler.Handle(context.Background(), command); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Created admin %s (%s)\n", *email, id)
}
