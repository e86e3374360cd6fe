package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"

	"github.com/avelezt/lanes/internal/api"
	"github.com/avelezt/lanes/internal/cache"
	"github.com/avelezt/lanes/internal/config"
	"github.com/avelezt/lanes/internal/logging"
	"github.com/avelezt/lanes/internal/session"
	"github.com/avelezt/lanes/internal/tui"
)

func main() {
	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sess, err := session.Load()
	if err != nil {
		log.Fatalf("Failed to load session: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := cache.InitDB(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer db.Close()
	store := cache.NewStore(db)

	gateway := api.NewClient(cfg.ServerURL, cfg.Timeout(), sess)

	model := tui.InitialModel(ctx, gateway, sess, store, cfg)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
