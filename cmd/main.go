package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio_admin/internal/config"
	"portfolio_admin/internal/handlers"
	"portfolio_admin/internal/logger"
	"portfolio_admin/internal/notifier"
	"portfolio_admin/internal/repository"
	"portfolio_admin/internal/repository/db"
	"portfolio_admin/internal/server"
	"portfolio_admin/internal/service"
	"portfolio_admin/internal/storage"
	"portfolio_admin/internal/upload"
)

const shutdownTimeout = 10 * time.Second

// @title                       Thavma Solutions admin API
// @version                     1.0
// @description                 Portfolio projects, contact inbox and admin session endpoints.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
func main() {
	// load .env, configs/config.yml and the environment
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	if cfg.Mail.Username == "" {
		log.Warnw("mail credentials not set; responding to messages will fail")
	}

	database, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	sender := notifier.NewSMTPSender(notifier.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
	services := service.NewService(repos, sender, service.Options{
		SigningKey:  cfg.JWTSecret,
		TokenTTL:    cfg.TokenTTL,
		PublicURL:   cfg.PublicURL,
		MailSubject: cfg.Mail.Subject,
	})

	store := storage.NewLocalStorage(cfg.UploadDir, "/uploads")
	if err := os.MkdirAll(store.Dir(), 0o755); err != nil {
		log.Fatalw("failed to create upload dir", "dir", store.Dir(), "err", err)
	}

	apiHandler := handlers.NewHandler(services, upload.New(store), log.Named("http"), handlers.RouterConfig{
		UploadDir:   store.Dir(),
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := server.New(server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)
	log.Infow("server started", "port", cfg.Port, "public_url", cfg.PublicURL, "db", cfg.DBPath)

	waitForShutdown(srv, log)
}

// openDB opens the SQLite database and makes sure the schema exists.
func openDB(cfg *config.Config, log *logger.Logger) (*sql.DB, error) {
	log.Infow("opening database", "path", cfg.DBPath)
	return db.InitDB(cfg.DBPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
