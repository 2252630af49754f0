package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"salon_backend/internal/app/di"
	"salon_backend/internal/app/router"
	authadapters "salon_backend/internal/feature/auth/adapters"
	authhandler "salon_backend/internal/feature/auth/transport/handler"
	authusecase "salon_backend/internal/feature/auth/usecase"
	bookinghandler "salon_backend/internal/feature/booking/transport/handler"
	bookingusecase "salon_backend/internal/feature/booking/usecase"
	infradb "salon_backend/internal/platform/db"
	jwtmw "salon_backend/internal/platform/jwt"
	infraredis "salon_backend/internal/platform/redis"
	"salon_backend/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()

	// db
	db := infradb.OpenDB()

	// Redis (optional: the list cache degrades to direct DB reads)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT secret is held by the server and injected, never read per request
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
		secret = "change-me"
	}
	generator := jwtmw.NewGenerator(secret, jwtmw.TokenExpiry)
	verifier := jwtmw.NewVerifier(secret)

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	serviceRepo := di.NewServiceRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, generator)
	serviceUC := bookingusecase.NewServiceUsecase(serviceRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	serviceH := bookinghandler.NewServiceHandler(serviceUC)

	// Register/login rate limit: 5 req/s with burst 10 per client IP
	limiter := ratelimiter.NewRateLimiter(5, 10)
	defer limiter.Stop()

	r := router.NewRouter(authH, serviceH, verifier, limiter)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
