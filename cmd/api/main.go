package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/franthony00/VoiceLink/internal/api"
	"github.com/franthony00/VoiceLink/internal/core/ports"
	"github.com/franthony00/VoiceLink/internal/core/service"
	"github.com/franthony00/VoiceLink/internal/infrastructure/db/memory"
	mongostore "github.com/franthony00/VoiceLink/internal/infrastructure/db/mongo"
	redisstore "github.com/franthony00/VoiceLink/internal/infrastructure/db/redis"
	"github.com/franthony00/VoiceLink/internal/pkg/config"
	"github.com/franthony00/VoiceLink/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log := logger.Get()
		log.Fatal().Err(err).Msg("application error")
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	log.Info().
		Str("env", cfg.Env).
		Str("store", cfg.Store).
		Str("session_store", cfg.SessionStore).
		Msg("starting voicelink api")

	deps, cleanup, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	e := api.NewRouter(deps)

	errChan := make(chan error, 1)
	go func() {
		errChan <- e.Start(":" + cfg.Port)
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("application stopped")
	return nil
}

// buildDependencies wires repositories, services, and optional external
// backends according to configuration. The returned cleanup closes every
// connection that was opened.
func buildDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (api.Dependencies, func(), error) {
	deps := api.Dependencies{JWTSecret: cfg.JWTSecret, Log: log}
	cleanups := make([]func(), 0, 2)
	cleanup := func() {
		for _, fn := range cleanups {
			fn()
		}
	}

	var (
		users       ports.UserRepository
		vaProfiles  ports.VoiceActorProfileRepository
		cliProfiles ports.ClientProfileRepository
		convs       ports.ConversationRepository
		messages    ports.MessageRepository
		sessions    ports.SessionStore
		locker      ports.PairLocker
	)

	switch cfg.Store {
	case config.StoreMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return deps, cleanup, err
		}
		cleanups = append(cleanups, func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				log.Error().Err(err).Msg("mongo disconnect error")
			}
		})
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

		userRepo := mongostore.NewUserRepository(db)
		convRepo := mongostore.NewConversationRepository(db)
		msgRepo := mongostore.NewMessageRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			return deps, cleanup, err
		}
		if err := convRepo.EnsureIndexes(ctx); err != nil {
			return deps, cleanup, err
		}
		if err := msgRepo.EnsureIndexes(ctx); err != nil {
			return deps, cleanup, err
		}

		users = userRepo
		vaProfiles = mongostore.NewVoiceActorProfileRepository(db)
		cliProfiles = mongostore.NewClientProfileRepository(db)
		convs = convRepo
		messages = msgRepo
		deps.DB = db
	default:
		store := memory.NewStore()
		users = store.Users()
		vaProfiles = store.VoiceActorProfiles()
		cliProfiles = store.ClientProfiles()
		convs = store.Conversations()
		messages = store.Messages()
		sessions = store.Sessions()
	}

	if cfg.SessionStore == config.SessionStoreRedis {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return deps, cleanup, err
		}
		cleanups = append(cleanups, func() {
			if err := rdb.Close(); err != nil {
				log.Error().Err(err).Msg("redis close error")
			}
		})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

		sessions = redisstore.NewSessionStore(rdb)
		locker = redisstore.NewPairLocker(rdb)
		deps.RDB = rdb
	}
	if sessions == nil {
		// Mongo store without Redis still needs a session pointer.
		sessions = memory.NewStore().Sessions()
	}

	deps.Auth = service.NewAuthService(users, vaProfiles, sessions, cfg.JWTSecret, 24*time.Hour, log)
	deps.Profiles = service.NewProfileService(users, vaProfiles, cliProfiles, log)
	deps.Messaging = service.NewMessagingService(convs, messages, locker, log)
	return deps, cleanup, nil
}
