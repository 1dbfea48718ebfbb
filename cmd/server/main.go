package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"socialfeed-api/feed/application"
	"socialfeed-api/feed/domain"
	"socialfeed-api/feed/persistence"
	"socialfeed-api/internal/middleware"
	"socialfeed-api/internal/rest"
	"socialfeed-api/shared/db/sqlite"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	_ = godotenv.Load()

	// The schema is brought to its current shape inside Connect, before
	// the server accepts any traffic. A failure here is fatal.
	database := sqlite.NewSQLiteDB(sqlite.NewSQLiteConfig())
	if err := database.Connect(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	conn := database.DB()
	postRepo := persistence.NewPostRepository(conn)
	commentRepo := persistence.NewCommentRepository(conn)
	likeRepo := persistence.NewLikeRepository(conn)

	clock := domain.SystemClock{}
	postService := application.NewPostService(postRepo, commentRepo, likeRepo, clock)
	commentService := application.NewCommentService(commentRepo, clock)
	likeService := application.NewLikeService(likeRepo, clock)

	router := gin.New()
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))

	rest.NewApi(postService, commentService, likeService).Register(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info().Msg("Starting server on port :" + port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}
