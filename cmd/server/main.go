package main

import (
	"log"
	"log/slog"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"hackathon_backend/internal/app/di"
	"hackathon_backend/internal/app/router"
	authadapters "hackathon_backend/internal/feature/auth/adapters"
	authentity "hackathon_backend/internal/feature/auth/domain/entity"
	authhandler "hackathon_backend/internal/feature/auth/transport/handler"
	authmw "hackathon_backend/internal/feature/auth/transport/middleware"
	authusecase "hackathon_backend/internal/feature/auth/usecase"
	eventsadapters "hackathon_backend/internal/feature/events/adapters"
	eventsentity "hackathon_backend/internal/feature/events/domain/entity"
	eventshandler "hackathon_backend/internal/feature/events/transport/handler"
	eventsusecase "hackathon_backend/internal/feature/events/usecase"
	"hackathon_backend/internal/platform/config"
	infradb "hackathon_backend/internal/platform/db"
	jwtmw "hackathon_backend/internal/platform/jwt"
	infraredis "hackathon_backend/internal/platform/redis"
	"hackathon_backend/internal/platform/upload"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	if cfg.AdminEmail == "" {
		log.Println("[WARN] ADMIN_EMAIL is not set. The sentinel admin login is disabled.")
	}

	// DB (fatal if unreachable after the retry window)
	db, err := infradb.Open(cfg.DB, 60*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.User{},
			&eventsentity.Registration{},
			&eventsentity.Idea{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	// Redis (optional; the count cache degrades to plain DB reads)
	var rdb *redisv9.Client
	if cfg.RedisHost != "" {
		if tmp, err := infraredis.NewRedisClient(cfg.RedisHost+":"+cfg.RedisPort, cfg.RedisPassword); err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Token codec
	generator := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	verifier := jwtmw.NewVerifier(cfg.JWTSecret)

	// Repositories
	userRepo := authadapters.NewUserMySQL(db)
	regRepo := di.NewRegistrationRepository(rdb, db)
	ideaRepo := eventsadapters.NewIdeaMySQL(db)
	fileStore := upload.NewLocalStorage(cfg.UploadDir, cfg.MaxUploadSize)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, generator, authusecase.AdminCredentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	eventsUC := eventsusecase.NewEventsUsecase(regRepo, ideaRepo, fileStore)

	// Handlers and access gate
	authH := authhandler.NewAuthHandler(authUC)
	eventsH := eventshandler.NewEventsHandler(eventsUC)
	gate := authmw.NewAccessGate(verifier, authUC)

	r := router.NewRouter(authH, eventsH, gate, cfg.CORSOrigins)

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
