package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"vidtube/internal/auth"
	"vidtube/internal/db"
	"vidtube/internal/handlers"
	"vidtube/internal/middleware"
)

func newRouter(h *handlers.Handlers, authMW *middleware.AuthMiddleware, rl *middleware.RateLimiterMiddleware, gateSubscriptions bool) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.Healthz).Methods(http.MethodGet)
	r.HandleFunc("/rss/{playlistId}", h.GetPlaylistFeed).Methods(http.MethodGet)

	playlists := r.PathPrefix("/api/v1/playlists").Subrouter()
	playlists.Use(authMW.Middleware, rl.Middleware)
	playlists.HandleFunc("", h.CreatePlaylist).Methods(http.MethodPost)
	playlists.HandleFunc("/user/{userId}", h.GetUserPlaylists).Methods(http.MethodGet)
	playlists.HandleFunc("/add/{videoId}/{playlistId}", h.AddVideoToPlaylist).Methods(http.MethodPatch)
	playlists.HandleFunc("/remove/{videoId}/{playlistId}", h.RemoveVideoFromPlaylist).Methods(http.MethodPatch)
	playlists.HandleFunc("/{playlistId}", h.GetPlaylistByID).Methods(http.MethodGet)
	playlists.HandleFunc("/{playlistId}", h.UpdatePlaylist).Methods(http.MethodPatch)
	playlists.HandleFunc("/{playlistId}", h.DeletePlaylist).Methods(http.MethodDelete)

	subscriptions := r.PathPrefix("/api/v1/subscriptions").Subrouter()
	if gateSubscriptions {
		subscriptions.Use(authMW.Middleware, rl.Middleware)
	}
	subscriptions.HandleFunc("/c/{channelId}", h.GetUserChannelSubscribers).Methods(http.MethodGet)
	subscriptions.HandleFunc("/c/{channelId}", h.ToggleSubscription).Methods(http.MethodPost)
	subscriptions.HandleFunc("/u/{subscriberId}", h.GetSubscribedChannels).Methods(http.MethodGet)

	return r
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error loading .env file")
	}

	store := db.Connect()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "127.0.0.1:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	h := handlers.New(store, asynqClient)
	authMW := middleware.NewAuthMiddleware(auth.NewVerifier([]byte(secret)))
	rl := middleware.NewRateLimiterMiddleware(rate.Limit(5), 10)

	// Subscription routes share the playlist auth gate unless explicitly
	// opened up.
	gateSubscriptions := os.Getenv("AUTH_SUBSCRIPTIONS") != "false"

	router := newRouter(h, authMW, rl, gateSubscriptions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatal(err)
	}
}
