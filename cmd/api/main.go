package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/devconnect/devconnect-go/internal/cache"
	"github.com/devconnect/devconnect-go/internal/config"
	"github.com/devconnect/devconnect-go/internal/handler"
	"github.com/devconnect/devconnect-go/internal/middleware"
	"github.com/devconnect/devconnect-go/internal/repository"
	"github.com/devconnect/devconnect-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	redisClient := cache.New(cfg.RedisAddr)
	if redisClient != nil {
		defer redisClient.Close()
	}

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost)
	profileService := service.NewProfileService(profileRepo, userRepo, postRepo)
	postService := service.NewPostService(postRepo, userRepo)
	githubService := service.NewGitHubService(cfg.GitHubToken, redisClient)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	postHandler := handler.NewPostHandler(postService)
	githubHandler := handler.NewGitHubHandler(githubService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("API Running"))
	})

	// Public routes.
	r.Get("/api/profile", profileHandler.HandleListProfiles)
	r.Get("/api/profile/user/{user_id}", profileHandler.HandleGetProfileByUserID)
	r.Get("/api/profile/github/{username}", githubHandler.HandleListRepos)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/users", authHandler.HandleRegister)
		r.Post("/api/auth", authHandler.HandleLogin)
	})

	// Routes requiring an identity token.
	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(cfg.JWTSecret))

		r.Get("/api/auth", authHandler.HandleCurrentUser)

		r.Get("/api/profile/me", profileHandler.HandleGetMyProfile)
		r.Post("/api/profile", profileHandler.HandleUpsertProfile)
		r.Delete("/api/profile", profileHandler.HandleDeleteAccount)
		r.Put("/api/profile/experience", profileHandler.HandleAddExperience)
		r.Delete("/api/profile/experience/{exp_id}", profileHandler.HandleDeleteExperience)
		r.Put("/api/profile/education", profileHandler.HandleAddEducation)
		r.Delete("/api/profile/education/{edu_id}", profileHandler.HandleDeleteEducation)

		r.Post("/api/posts", postHandler.HandleCreatePost)
		r.Get("/api/posts", postHandler.HandleListPosts)
		r.Get("/api/posts/{post_id}", postHandler.HandleGetPost)
		r.Delete("/api/posts/{post_id}", postHandler.HandleDeletePost)
		r.Put("/api/posts/like/{post_id}", postHandler.HandleLikePost)
		r.Put("/api/posts/unlike/{post_id}", postHandler.HandleUnlikePost)
		r.Post("/api/posts/comment/{post_id}", postHandler.HandleAddComment)
		r.Delete("/api/posts/comment/{post_id}/{comment_id}", postHandler.HandleDeleteComment)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
