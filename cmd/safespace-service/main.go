package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/safespacehq/safespace-service/internal/ai"
	"github.com/safespacehq/safespace-service/internal/cache"
	"github.com/safespacehq/safespace-service/internal/config"
	"github.com/safespacehq/safespace-service/internal/events"
	storieshandler "github.com/safespacehq/safespace-service/internal/http/handlers/stories"
	viewshandler "github.com/safespacehq/safespace-service/internal/http/handlers/views"
	wshandler "github.com/safespacehq/safespace-service/internal/http/handlers/websocket"
	"github.com/safespacehq/safespace-service/internal/narration"
	"github.com/safespacehq/safespace-service/internal/services/submission"
	"github.com/safespacehq/safespace-service/internal/storage/memory"
	"github.com/safespacehq/safespace-service/internal/view"
	"github.com/safespacehq/safespace-service/internal/websocket"
)

func main() {
	// .env is optional, real env vars win either way
	godotenv.Load()

	// load config
	cfg := config.MustLoad()

	// story store, seeded so the feed is never empty
	store := memory.NewMemory(memory.SeedStories())
	slog.Info("Story store seeded", slog.Int("stories", store.Count()))

	// AI gateway; runs on documented defaults when no key is configured
	gateway, err := ai.NewGateway(context.Background(), cfg.Gemini)
	if err != nil {
		log.Fatal("Failed to initialize AI gateway:", err)
	}

	// optional redis-backed comment cache
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		slog.Info("Connected to Redis", slog.String("addr", cfg.Redis.Addr))
	}
	comments := cache.NewCommentCache(redisClient)

	// real-time feed events
	hub := websocket.NewHub()
	go hub.Run()
	publisher := events.NewEventPublisher(hub)

	submitSvc := submission.NewService(store, gateway, cfg.Submission.StepDelay)
	router := view.NewRouter()
	narrator := narration.NewNarrator(narration.LogEngine{})

	// setup server
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Safespace is up"))
	})
	mux.HandleFunc("GET /stories", storieshandler.Feed(store))
	mux.HandleFunc("POST /stories", storieshandler.PostStory(submitSvc, router, publisher))
	mux.HandleFunc("GET /stories/{id}", storieshandler.GetStory(store))
	mux.HandleFunc("POST /stories/{id}/reactions", storieshandler.React(store, publisher))
	mux.HandleFunc("POST /stories/{id}/comment", storieshandler.Comment(store, gateway, comments, publisher))
	mux.HandleFunc("POST /stories/{id}/narration", storieshandler.Narrate(store, narrator))
	mux.HandleFunc("GET /view", viewshandler.Current(router, store))
	mux.HandleFunc("POST /view", viewshandler.Navigate(router))
	mux.HandleFunc("GET /ws", wshandler.Handler(hub))

	server := http.Server{
		Addr:    cfg.HTTPServer.Address,
		Handler: mux,
	}

	log.Println("server started on", cfg.HTTPServer.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-done

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}
