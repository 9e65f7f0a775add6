// Command purge-legacy-orders removes active orders that still contain line
// items without a product reference.
package main

import (
	"context"
	"fmt"

	"penguinadmin/cmd"
	"penguinadmin/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
)

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		log.Fatalf("Database unavailable: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, cmd.NewLogger(configs.LogLevel))
	handler := app.CreatePurgeLegacyOrdersCommandHandler()

	removed, err := handler.Handle(context.Background(), commands.NewPurgeLegacyOrdersCommand())
	if err != nil {
		log.Fatalf("Purge failed: %v", err)
	}

	fmt.Printf("Removed %d legacy orders\n", removed)
}
