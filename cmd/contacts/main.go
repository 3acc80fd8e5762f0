package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	myPostgres "github.com/Miraines/ContactNest/contacts-service/internal/adapters/db/postgres"
	myRedis "github.com/Miraines/ContactNest/contacts-service/internal/adapters/db/redis"
	"github.com/Miraines/ContactNest/contacts-service/internal/adapters/mail"
	myHTTP "github.com/Miraines/ContactNest/contacts-service/internal/adapters/transport/http"
	"github.com/Miraines/ContactNest/contacts-service/internal/app/auth/hash"
	"github.com/Miraines/ContactNest/contacts-service/internal/app/auth/secrets"
	authsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/auth/service"
	apptoken "github.com/Miraines/ContactNest/contacts-service/internal/app/auth/token"
	contactsvc "github.com/Miraines/ContactNest/contacts-service/internal/app/contacts/service"
	"github.com/Miraines/ContactNest/contacts-service/internal/infra/config"
	lg "github.com/Miraines/ContactNest/contacts-service/internal/infra/log"
	"github.com/Miraines/ContactNest/contacts-service/internal/infra/migrate"
	"golang.org/x/sync/errgroup"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	redisCli := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisCli.Close()

	validate := validator.New()

	userRepo := myPostgres.NewUserRepo(db)
	contactRepo := myPostgres.NewContactRepo(db)
	categoryRepo := myPostgres.NewCategoryRepo(db)
	tokenRepo := myRedis.NewTokenRepo(redisCli)

	codec := apptoken.NewJWTCodec(cfg)
	hasher := hash.NewArgon2(cfg.PasswordPepper)

	var secretGen secrets.Generator = secrets.Random{}
	if cfg.IsDev() {
		// dev only: makes verify-email and reset-password scriptable
		secretGen = secrets.Fixed{Value: "secret"}
		zapLog.Warn("dev environment: verification and reset secrets are fixed")
	}

	mailer := mail.NewSMTPSender(cfg)

	auth := authsvc.New(userRepo, tokenRepo, codec, hasher, secretGen, mailer, cfg, validate)
	contacts := contactsvc.New(contactRepo, categoryRepo, validate)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router := myHTTP.NewRouter(auth, contacts, cfg, zapLog, registry)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}
	rootCtx, cancel := context.WithCancel(context.Background())
	g, _ := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		zapLog.Info("http server listening", zap.String("addr", cfg.HTTPAddress))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
