// Package app boots the card admin backend: configuration, database,
// token revocation store and the HTTP server lifecycle.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/devendraInfograins/CardApp/internal/config"
	"github.com/devendraInfograins/CardApp/internal/db"
	"github.com/devendraInfograins/CardApp/internal/fixtures"
	"github.com/devendraInfograins/CardApp/internal/logging"
	"github.com/devendraInfograins/CardApp/internal/models"
	"github.com/devendraInfograins/CardApp/internal/security"
	"github.com/devendraInfograins/CardApp/internal/server"
	"github.com/devendraInfograins/CardApp/internal/tokenstore"
)

// Options holds inputs shared by the subcommands.
type Options struct {
	ConfigPath string
}

// Migrate opens the database and runs schema migrations.
func Migrate(ctx context.Context, opts Options) error {
	_, conn, err := openFromConfig(opts)
	if err != nil {
		return err
	}
	return db.Migrate(conn)
}

// Seed migrates the schema, ensures the default admin exists and loads the
// demo dataset into any empty tables. Seeding is idempotent: populated
// tables are left untouched.
func Seed(ctx context.Context, opts Options) error {
	_, conn, err := openFromConfig(opts)
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	return seedData(ctx, conn)
}

// RunServer boots the admin API server and blocks until ctx is canceled or
// the listener fails.
func RunServer(ctx context.Context, opts Options) error {
	cfg, conn, err := openFromConfig(opts)
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	if errSeed := seedAdmin(ctx, conn); errSeed != nil {
		return errSeed
	}

	revoker := newRevoker(ctx, cfg)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	server.RegisterRoutes(engine, conn, cfg.JWT, revoker)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s (%s)", cfg.Listen, db.DialectName(conn))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if errShutdown := srv.Shutdown(shutdownCtx); errShutdown != nil {
			return fmt.Errorf("app: shutdown: %w", errShutdown)
		}
		return nil
	case errServe := <-errCh:
		if errServe != nil && !errors.Is(errServe, http.ErrServerClosed) {
			return fmt.Errorf("app: serve: %w", errServe)
		}
		return nil
	}
}

// openFromConfig loads configuration, configures logging and opens the
// database connection.
func openFromConfig(opts Options) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(config.ResolveConfigPath(opts.ConfigPath))
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.Log)
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	return &cfg, conn, nil
}

// newRevoker returns a redis-backed revocation store when redis is
// configured and reachable, otherwise an in-process store.
func newRevoker(ctx context.Context, cfg *config.Config) tokenstore.Store {
	if cfg.Redis.Addr == "" {
		return tokenstore.NewMemoryStore()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if errPing := client.Ping(pingCtx).Err(); errPing != nil {
		log.WithError(errPing).Warnf("redis unreachable at %s, using in-memory revocation store", cfg.Redis.Addr)
		return tokenstore.NewMemoryStore()
	}
	return tokenstore.NewRedisStore(client)
}

// Default admin credentials created on first boot.
const (
	defaultAdminEmail    = "admin@blockchain.com"
	defaultAdminPassword = "admin123"
)

// seedAdmin creates the default admin account when no admin exists yet.
func seedAdmin(ctx context.Context, conn *gorm.DB) error {
	var count int64
	if errCount := conn.WithContext(ctx).Model(&models.Admin{}).Count(&count).Error; errCount != nil {
		return fmt.Errorf("app: count admins: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	hash, errHash := security.HashPassword(defaultAdminPassword)
	if errHash != nil {
		return fmt.Errorf("app: hash default password: %w", errHash)
	}
	admin := models.Admin{
		Email:    defaultAdminEmail,
		Name:     "Platform Admin",
		Role:     "Admin",
		Password: hash,
		Active:   true,
	}
	if errCreate := conn.WithContext(ctx).Create(&admin).Error; errCreate != nil {
		return fmt.Errorf("app: create default admin: %w", errCreate)
	}
	log.Infof("created default admin %s", defaultAdminEmail)
	return nil
}

// seedData loads the demo dataset into empty tables.
func seedData(ctx context.Context, conn *gorm.DB) error {
	if errAdmin := seedAdmin(ctx, conn); errAdmin != nil {
		return errAdmin
	}

	seeds := []struct {
		model any
		rows  func() any
	}{
		{&models.CardHolder{}, func() any { rows := fixtures.CardHolders(); return &rows }},
		{&models.CardRequest{}, func() any { rows := fixtures.CardRequests(); return &rows }},
		{&models.CardInfo{}, func() any { rows := fixtures.CardInfos(); return &rows }},
		{&models.Wallet{}, func() any { rows := fixtures.Wallets(); return &rows }},
		{&models.Transaction{}, func() any { rows := fixtures.Transactions(); return &rows }},
	}
	for _, seed := range seeds {
		var count int64
		if errCount := conn.WithContext(ctx).Model(seed.model).Count(&count).Error; errCount != nil {
			return fmt.Errorf("app: count for seed: %w", errCount)
		}
		if count > 0 {
			continue
		}
		if errCreate := conn.WithContext(ctx).Create(seed.rows()).Error; errCreate != nil {
			return fmt.Errorf("app: insert seed rows: %w", errCreate)
		}
	}
	log.Info("seed data loaded")
	return nil
}
