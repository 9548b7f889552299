package main

import (
	"log"
	"os"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"todo_backend/internal/app/di"
	"todo_backend/internal/app/router"
	authadapters "todo_backend/internal/feature/auth/adapters"
	authhandler "todo_backend/internal/feature/auth/transport/handler"
	authusecase "todo_backend/internal/feature/auth/usecase"
	todohandler "todo_backend/internal/feature/todos/transport/handler"
	todousecase "todo_backend/internal/feature/todos/usecase"
	"todo_backend/internal/platform/db"
	jwtmw "todo_backend/internal/platform/jwt"
	"todo_backend/internal/platform/password"
	platformredis "todo_backend/internal/platform/redis"
)

// tokenTTL reads the access token lifetime from JWT_TTL_MINUTES,
// defaulting to 30 minutes.
func tokenTTL() time.Duration {
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return 30 * time.Minute
}

func main() {
	// db
	gdb, err := db.Open(db.LoadConfig())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.Migrate(gdb); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	// Redis (optional; the todo list cache degrades to passthrough without it)
	var rdb *redisv9.Client
	addr := os.Getenv("REDIS_HOST") + ":" + os.Getenv("REDIS_PORT")
	if tmp, err := platformredis.NewRedisClient(addr, os.Getenv("REDIS_PASSWORD")); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Token service: signing key and TTL are fixed for the process lifetime.
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := jwtmw.NewGenerator(secret, tokenTTL())

	// Repository
	userRepo := authadapters.NewUserGorm(gdb)
	todoRepo := di.NewTodoRepository(rdb, gdb, 5*time.Minute)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, password.NewHasher(0), password.NewPolicy(), tokens)
	todoUC := todousecase.NewTodoUsecase(todoRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	todoH := todohandler.NewTodoHandler(todoUC)

	r := router.NewRouter(authH, todoH, jwtmw.AuthRequired(tokens, userRepo))

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
