package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ignite/pipeline-portal/internal/api"
	"github.com/ignite/pipeline-portal/internal/config"
	"github.com/ignite/pipeline-portal/internal/pkg/httpretry"
	"github.com/ignite/pipeline-portal/internal/pkg/logger"
	"github.com/ignite/pipeline-portal/internal/prefs"
	"github.com/ignite/pipeline-portal/internal/service/dashboard"
	"github.com/ignite/pipeline-portal/internal/tabular"
)

// checkPortAvailable verifies that the target port is not already in use.
// This prevents confusion from stale/stub processes occupying the port.
func checkPortAvailable(host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("port %d is already in use (addr %s): %v\n"+
			"  Hint: Run 'lsof -i :%d' to find the blocking process", port, addr, err, port)
	}
	ln.Close()
	return nil
}

// buildStore opens the configured tabular store backend. The returned closer
// is nil for backends without a connection to release.
func buildStore(cfg *config.Config) (tabular.Store, func() error, error) {
	switch cfg.Store.Backend {
	case "postgres":
		if cfg.Database.URL == "" {
			return nil, nil, fmt.Errorf("postgres backend selected but database.url is empty")
		}
		store, db, err := tabular.NewPostgresStore(cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return store, db.Close, nil

	case "snowflake":
		store, db, err := tabular.NewSnowflakeStore(tabular.SnowflakeConfig{
			Account:   cfg.Snowflake.Account,
			User:      cfg.Snowflake.User,
			Password:  cfg.Snowflake.Password,
			Database:  cfg.Snowflake.Database,
			Schema:    cfg.Snowflake.Schema,
			Warehouse: cfg.Snowflake.Warehouse,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, db.Close, nil

	case "rest":
		if cfg.Store.BaseURL == "" {
			return nil, nil, fmt.Errorf("rest backend selected but store.base_url is empty")
		}
		doer := httpretry.NewRetryClient(nil, cfg.Store.MaxRetries)
		return tabular.NewRESTStore(cfg.Store.BaseURL, cfg.Store.APIKey, doer), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q (want postgres, snowflake, or rest)", cfg.Store.Backend)
	}
}

// buildPrefsStore connects Redis when enabled, falling back to the in-memory
// store so a missing Redis never blocks the dashboards.
func buildPrefsStore(ctx context.Context, cfg *config.Config) (prefs.Store, func() error) {
	if !cfg.Redis.Enabled {
		log.Println("Redis not configured, using in-memory preference store")
		return prefs.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Warning: Redis connection failed (%s): %v, preferences will not persist", cfg.Redis.Addr, err)
		client.Close()
		return prefs.NewMemoryStore(), nil
	}

	log.Printf("Redis connected: %s (preference persistence enabled)", cfg.Redis.Addr)
	return prefs.NewRedisStore(client), client.Close
}

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("DATABASE_URL") != "" {
		log.Println("[config] DATABASE_URL env override active")
	}

	logger.SetLevel(logger.ParseLevel(cfg.Logging.Level))
	if cfg.Logging.RedactPII != nil {
		logger.SetRedactPII(*cfg.Logging.RedactPII)
	}

	// Pre-flight check: verify the target port is available
	host := cfg.Server.GetHost()
	port := cfg.Server.Port
	if err := checkPortAvailable(host, port); err != nil {
		log.Fatalf("Pre-flight check FAILED: %v", err)
	}
	log.Printf("Pre-flight check passed: port %d is available", port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the tabular store backend
	store, closeStore, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s store: %v", cfg.Store.Backend, err)
	}
	if closeStore != nil {
		defer closeStore()
	}
	log.Printf("Tabular store initialized (backend: %s, page size: %d)", cfg.Store.Backend, cfg.Store.PageSize)

	// Initialize the preference store
	prefStore, closePrefs := buildPrefsStore(ctx, cfg)
	if closePrefs != nil {
		defer closePrefs()
	}

	// Initialize the dashboard service and API server
	dashboards := dashboard.New(store, cfg.Store.PageSize)
	server := api.NewServer(cfg, dashboards, prefStore)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Setup graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	log.Println("All services initialized - server is ready")

	<-done
	log.Println("Shutting down...")

	// Cancel background tasks
	cancel()

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
