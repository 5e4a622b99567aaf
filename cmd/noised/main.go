package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noise-go/pkg/log"
	"noise-go/pkg/profile"
	"noise-go/pkg/server"
	"noise-go/pkg/store"
)

func main() {
	// Parse command-line flags.
	configFile := flag.String("config", "", "Path to the profile config file (searches standard locations when empty)")
	listen := flag.String("listen", "", "Listen address override, e.g. :7780")
	dbPath := flag.String("db", "", "SQLite store path override")
	logLevel := flag.String("loglevel", "", "Log level override: debug, info, warn or error")
	flag.Parse()

	cfg, err := profile.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	log.MustInit(level, true)

	storePath := cfg.StorePath
	if *dbPath != "" {
		storePath = *dbPath
	}
	st, err := store.Open(storePath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	addr := cfg.ListenAddr
	if *listen != "" {
		addr = *listen
	}
	srv := server.New(cfg, st)

	// Setup OS signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Api.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	if err := srv.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
