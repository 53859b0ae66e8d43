package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/sparekeeper/internal/app"
	"github.com/dmitrijs2005/sparekeeper/internal/config"
)

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	a, err := app.NewApp(ctx, cfg, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	a.Run(ctx)
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalf("sparekeeper: %v", err)
	}
}
