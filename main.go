package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/reach-board/cliparse"
	"github.com/danielhkuo/reach-board/db"
	"github.com/danielhkuo/reach-board/middleware"
	"github.com/danielhkuo/reach-board/router"
	"github.com/danielhkuo/reach-board/seed"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	buckets, err := cfg.Buckets()
	if err != nil {
		slog.Error("invalid bucket table", "file", cfg.BucketsFile, "error", err)
		os.Exit(1)
	}

	// Connect to the database; both drivers are registered above
	dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	if cfg.Seed {
		if _, err := seed.Run(dbConn); err != nil {
			slog.Error("seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, buckets)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "scheme", cfg.ColorScheme, "per_page", cfg.ItemsPerPage)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
