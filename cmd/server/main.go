package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"chat_backend/internal/app/di"
	"chat_backend/internal/app/router"
	"chat_backend/internal/config"
	"chat_backend/internal/feature/chat/adapters"
	chathandler "chat_backend/internal/feature/chat/transport/handler"
	"chat_backend/internal/feature/chat/usecase"
	platformdb "chat_backend/internal/platform/db"
	"chat_backend/internal/platform/logger"
	platformredis "chat_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.Primary.Env, cfg.Primary.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := platformdb.Open(platformdb.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		Name:     cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	}, cfg.Database.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("db handle")
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			log.Error().Err(err).Msg("close database")
		}
	}()

	// Redis（未設定・接続不可ならキャッシュなしで起動）
	var rdb *redisv9.Client
	if cfg.Redis.Address != "" {
		if tmp, err := platformredis.NewRedisClient(ctx, cfg.Redis.Address, cfg.Redis.Password); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, running without room name cache")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Error().Err(err).Msg("close redis client")
				}
			}()
		}
	}

	// Repository
	store := adapters.NewUserRoomStore(gdb)
	rooms := di.NewRoomDirectory(rdb, cfg.Cache.RoomNameTTL, store)

	// Usecase
	userUC := usecase.NewUserUsecase(store)
	roomUC := usecase.NewRoomUsecase(rooms)

	// Handler
	userH := chathandler.NewUserHandler(userUC)
	roomH := chathandler.NewRoomHandler(roomUC)

	// ルータ生成
	r := router.NewRouter(sqlDB, userUC, userH, roomH)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("env", cfg.Primary.Env).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server run")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
