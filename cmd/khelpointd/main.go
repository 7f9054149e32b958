// khelpointd serves the Khel Point site: the static page bundle, the JSON
// API, and websocket live score feeds.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"github.com/khelpoint/khelpoint/internal/server"
	"github.com/khelpoint/khelpoint/internal/store"
	"github.com/khelpoint/khelpoint/internal/store/fsdb"
	"github.com/khelpoint/khelpoint/internal/store/memdb"
)

var CLI struct {
	Addr         string            `help:"Listen address." default:":8080"`
	StaticDir    string            `help:"Directory holding the page bundle." default:"web"`
	ProjectID    string            `help:"GCP project ID." env:"GCP_PROJECT"`
	Dev          bool              `help:"Run against an in-memory store instead of Firestore."`
	Collections  map[string]string `help:"Collection name overrides, as logical=actual pairs."`
	PollInterval time.Duration     `help:"Live feed fallback poll cadence." default:"3s"`
}

func main() {
	kctx := kong.Parse(&CLI)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var s store.Store
	if CLI.Dev {
		log.Print("Using in-memory store; all data is lost on exit")
		s = memdb.New()
	} else {
		if CLI.ProjectID == "" {
			kctx.Fatalf("project ID is required unless running with --dev")
		}
		client, err := fsdb.New(ctx, CLI.ProjectID, store.Collections(CLI.Collections))
		if err != nil {
			kctx.FatalIfErrorf(err)
		}
		defer client.Close()
		s = client
	}

	srv := server.New(s, server.Config{
		Addr:         CLI.Addr,
		StaticDir:    CLI.StaticDir,
		PollInterval: CLI.PollInterval,
	})

	log.Printf("Listening on %s", CLI.Addr)
	if err := srv.Run(ctx); err != nil {
		kctx.FatalIfErrorf(err)
	}
}
